package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/service"
)

const (
	collBoards  = "boards"
	collThreads = "threads"
	collPosts   = "posts"
	collAdmins  = "admins"
)

type boardDoc struct {
	Name          string `bson:"_id"`
	Title         string `bson:"title"`
	FilesizeLimit int64  `bson:"filesizeLimit"`
	Worksafe      bool   `bson:"worksafe"`
	BumpLimit     int    `bson:"bumpLimit"`
}

type threadDoc struct {
	Board    string `bson:"board"`
	ID       int64  `bson:"id"`
	Sticky   bool   `bson:"sticky"`
	LastBump int64  `bson:"lastBump"`
	Deleted  bool   `bson:"deleted,omitempty"`
}

type postDoc struct {
	Board   string `bson:"board"`
	ID      int64  `bson:"id"`
	Thread  int64  `bson:"thread"`
	Date    int64  `bson:"date"`
	Name    string `bson:"name"`
	Subject string `bson:"subject"`
	Email   string `bson:"email"`
	Comment string `bson:"comment"`
	IP      string `bson:"ip"`
	Deleted bool   `bson:"deleted,omitempty"`
}

type adminDoc struct {
	ID           string    `bson:"_id"`
	Ident        string    `bson:"ident"`
	PasswordHash []byte    `bson:"passwordHash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// Store реализует service.BoardRepository и service.UserRepository поверх MongoDB
type Store struct {
	client  *mongo.Client
	boards  *mongo.Collection
	threads *mongo.Collection
	posts   *mongo.Collection
	admins  *mongo.Collection
}

func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:  client,
		boards:  db.Collection(collBoards),
		threads: db.Collection(collThreads),
		posts:   db.Collection(collPosts),
		admins:  db.Collection(collAdmins),
	}
}

// EnsureIndexes создает индексы; идентификатор персонала уникален, посты нет
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ident", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := s.threads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "board", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	_, err := s.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "board", Value: 1}, {Key: "thread", Value: 1}, {Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "board", Value: 1}, {Key: "ip", Value: 1}, {Key: "date", Value: -1}}},
	})
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return errors.Join(ErrHealthcheck, err)
	}
	return nil
}

func (s *Store) LastPostTime(ctx context.Context, board, ip string) (int64, bool, error) {
	var p postDoc
	err := s.posts.FindOne(ctx,
		bson.D{{Key: "board", Value: board}, {Key: "ip", Value: ip}},
		options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}}),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return p.Date, true, nil
}

func (s *Store) NextPostID(ctx context.Context, board string) (int64, error) {
	// удаленные посты остаются в коллекции и считаются
	n, err := s.posts.CountDocuments(ctx, bson.D{{Key: "board", Value: board}})
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (s *Store) ListBoards(ctx context.Context) ([]models.Board, error) {
	cur, err := s.boards.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []boardDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Board, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *Store) GetBoard(ctx context.Context, name string) (models.Board, error) {
	var d boardDoc
	err := s.boards.FindOne(ctx, bson.D{{Key: "_id", Value: name}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Board{}, service.ErrBoardNotFound
	}
	if err != nil {
		return models.Board{}, err
	}
	return d.model(), nil
}

func (s *Store) InsertBoard(ctx context.Context, b models.Board) error {
	_, err := s.boards.InsertOne(ctx, boardDoc{
		Name:          b.Name,
		Title:         b.Title,
		FilesizeLimit: b.FilesizeLimit,
		Worksafe:      b.Worksafe,
		BumpLimit:     b.BumpLimit,
	})
	return duplicateAs(err, service.ErrBoardExists)
}

func (s *Store) UpdateBoard(ctx context.Context, name string, b models.Board) error {
	res, err := s.boards.UpdateOne(ctx, bson.D{{Key: "_id", Value: name}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: b.Title},
		{Key: "filesizeLimit", Value: b.FilesizeLimit},
		{Key: "worksafe", Value: b.Worksafe},
		{Key: "bumpLimit", Value: b.BumpLimit},
	}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return service.ErrBoardNotFound
	}
	return nil
}

// DeleteBoard удаляет доску, затем ее треды и посты
func (s *Store) DeleteBoard(ctx context.Context, name string) error {
	res, err := s.boards.DeleteOne(ctx, bson.D{{Key: "_id", Value: name}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return service.ErrBoardNotFound
	}
	if _, err := s.threads.DeleteMany(ctx, bson.D{{Key: "board", Value: name}}); err != nil {
		return err
	}
	_, err = s.posts.DeleteMany(ctx, bson.D{{Key: "board", Value: name}})
	return err
}

func (s *Store) ListThreads(ctx context.Context, board string) ([]models.Thread, error) {
	cur, err := s.threads.Find(ctx, live(bson.D{{Key: "board", Value: board}}), options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []threadDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Thread, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *Store) GetThread(ctx context.Context, board string, id int64) (models.Thread, error) {
	var d threadDoc
	err := s.threads.FindOne(ctx, live(threadKey(board, id))).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Thread{}, service.ErrThreadNotFound
	}
	if err != nil {
		return models.Thread{}, err
	}
	return d.model(), nil
}

func (s *Store) ListPosts(ctx context.Context, board string, thread int64) ([]models.Post, error) {
	cur, err := s.posts.Find(ctx,
		live(bson.D{{Key: "board", Value: board}, {Key: "thread", Value: thread}}),
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (s *Store) InsertThread(ctx context.Context, board string, op models.Post) error {
	if _, err := s.threads.InsertOne(ctx, threadDoc{Board: board, ID: op.ID, LastBump: op.Date}); err != nil {
		return duplicateAs(err, service.ErrPostIDTaken)
	}
	_, err := s.posts.InsertOne(ctx, newPostDoc(board, op))
	return err
}

func (s *Store) InsertReply(ctx context.Context, board string, reply models.Post, bump bool) error {
	if bump {
		res, err := s.threads.UpdateOne(ctx, live(threadKey(board, reply.Thread)),
			bson.D{{Key: "$set", Value: bson.D{{Key: "lastBump", Value: reply.Date}}}})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return service.ErrThreadNotFound
		}
	}
	_, err := s.posts.InsertOne(ctx, newPostDoc(board, reply))
	return err
}

// DeletePost помечает пост удаленным; удаление первого поста снимает весь тред
func (s *Store) DeletePost(ctx context.Context, board string, id int64) error {
	res, err := s.threads.UpdateOne(ctx, live(threadKey(board, id)), markDeleted)
	if err != nil {
		return err
	}
	if res.ModifiedCount > 0 {
		_, err := s.posts.UpdateMany(ctx, bson.D{{Key: "board", Value: board}, {Key: "thread", Value: id}}, markDeleted)
		return err
	}
	res, err = s.posts.UpdateMany(ctx, live(bson.D{{Key: "board", Value: board}, {Key: "id", Value: id}}), markDeleted)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return service.ErrPostNotFound
	}
	return nil
}

func (s *Store) SetSticky(ctx context.Context, board string, thread int64, sticky bool) error {
	res, err := s.threads.UpdateOne(ctx, live(threadKey(board, thread)),
		bson.D{{Key: "$set", Value: bson.D{{Key: "sticky", Value: sticky}}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return service.ErrThreadNotFound
	}
	return nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.admins.CountDocuments(ctx, bson.D{})
}

func (s *Store) GetUserByIdent(ctx context.Context, ident string) (models.AdminUser, error) {
	var d adminDoc
	err := s.admins.FindOne(ctx, bson.D{{Key: "ident", Value: ident}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AdminUser{}, service.ErrNoSuchUser
	}
	if err != nil {
		return models.AdminUser{}, err
	}
	return d.model(), nil
}

func (s *Store) InsertUser(ctx context.Context, u models.AdminUser) error {
	_, err := s.admins.InsertOne(ctx, newAdminDoc(u))
	return duplicateAs(err, service.ErrUserExists)
}

// duplicateAs заменяет ошибку уникального индекса доменной ошибкой
func duplicateAs(err, domain error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain
	}
	return err
}

var markDeleted = bson.D{{Key: "$set", Value: bson.D{{Key: "deleted", Value: true}}}}

func threadKey(board string, id int64) bson.D {
	return bson.D{{Key: "board", Value: board}, {Key: "id", Value: id}}
}

// live дополняет фильтр условием "не удален"; у старых документов поля нет
func live(filter bson.D) bson.D {
	return append(filter, bson.E{Key: "deleted", Value: bson.D{{Key: "$ne", Value: true}}})
}

func (d threadDoc) model() models.Thread {
	return models.Thread{ID: d.ID, Sticky: d.Sticky, LastBump: d.LastBump}
}

func newAdminDoc(u models.AdminUser) adminDoc {
	return adminDoc{
		ID:           u.ID,
		Ident:        u.Ident,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func (d adminDoc) model() models.AdminUser {
	return models.AdminUser{
		ID:           d.ID,
		Ident:        d.Ident,
		PasswordHash: d.PasswordHash,
		Role:         models.Role(d.Role),
		CreatedAt:    d.CreatedAt,
	}
}

func (d boardDoc) model() models.Board {
	return models.Board{
		Name:          d.Name,
		Title:         d.Title,
		FilesizeLimit: d.FilesizeLimit,
		Worksafe:      d.Worksafe,
		BumpLimit:     d.BumpLimit,
	}
}

func newPostDoc(board string, p models.Post) postDoc {
	return postDoc{
		Board:   board,
		ID:      p.ID,
		Thread:  p.Thread,
		Date:    p.Date,
		Name:    p.Name,
		Subject: p.Subject,
		Email:   p.Email,
		Comment: p.Comment,
		IP:      p.IP,
	}
}

func (d postDoc) model() models.Post {
	return models.Post{
		ID:      d.ID,
		Thread:  d.Thread,
		Date:    d.Date,
		Name:    d.Name,
		Subject: d.Subject,
		Email:   d.Email,
		Comment: d.Comment,
		IP:      d.IP,
	}
}
