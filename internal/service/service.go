package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vbncursed/vkr/board-service/internal/logger"
	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/util"
)

const (
	SessionTTL = 6 * 31 * 24 * time.Hour

	maxCommentLen = 2000
	maxFieldLen   = 20
	sageEmail     = "sage"
)

// Service реализует use case'ы форума поверх admission-пайплайна
type Service struct {
	boards     BoardRepository
	users      UserRepository
	tokens     Tokens
	gate       *RoleGate
	guard      *RateGuard
	clock      Clock
	logger     *slog.Logger
	bcryptCost int
}

type Option func(*Service)

// WithLogger — логгер сервиса
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBcryptCost — стоимость bcrypt для паролей персонала
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

func New(boards BoardRepository, users UserRepository, tokens Tokens, gate *RoleGate, clock Clock, opts ...Option) *Service {
	s := &Service{
		boards:     boards,
		users:      users,
		tokens:     tokens,
		gate:       gate,
		guard:      NewRateGuard(boards, clock),
		clock:      clock,
		logger:     logger.Discard(),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login — вход персонала. Действующий токен возвращается как есть;
// пока нет ни одной учетной записи, первый вход создает администратора.
func (s *Service) Login(ctx context.Context, authorization string, cmd LoginCommand) (string, error) {
	if authorization != "" {
		if _, err := s.gate.Identify(authorization); err == nil {
			return strings.TrimSpace(authorization[len(bearerPrefix):]), nil
		}
	}

	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return "", storage(err)
	}
	if n == 0 {
		s.logger.InfoContext(ctx, "no staff accounts, creating first administrator", slog.String("ident", cmd.Ident))
		if err := s.CreateUser(ctx, NewUserCommand{Ident: cmd.Ident, Pass: cmd.Pass, Role: s.gate.Top()}); err != nil {
			return "", err
		}
	}

	u, err := s.users.GetUserByIdent(ctx, cmd.Ident)
	if err != nil {
		return "", storage(err)
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(cmd.Pass)); err != nil {
		return "", ErrAuthFailed
	}
	return s.tokens.Create(models.Identity{
		Role:       u.Role,
		Expiration: s.clock.Now().Add(SessionTTL).UnixMilli(),
	})
}

// CreateUser — новая учетная запись персонала с ролью из кольца
func (s *Service) CreateUser(ctx context.Context, cmd NewUserCommand) error {
	if !s.gate.Known(cmd.Role) || cmd.Ident == "" {
		return ErrMalformedPayload
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Pass), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrMalformedPayload
	}
	if err != nil {
		return err
	}
	return storage(s.users.InsertUser(ctx, models.AdminUser{
		ID:           uuid.New().String(),
		Ident:        cmd.Ident,
		PasswordHash: hash,
		Role:         cmd.Role,
		CreatedAt:    s.clock.Now().UTC(),
	}))
}

// ListBoards — все доски
func (s *Service) ListBoards(ctx context.Context) ([]models.Board, error) {
	b, err := s.boards.ListBoards(ctx)
	return b, storage(err)
}

// CreateBoard — ErrBoardExists, если доска уже есть
func (s *Service) CreateBoard(ctx context.Context, b models.Board) error {
	if _, err := s.boards.GetBoard(ctx, b.Name); err == nil {
		return ErrBoardExists
	} else if !errors.Is(err, ErrBoardNotFound) {
		return storage(err)
	}
	return storage(s.boards.InsertBoard(ctx, b))
}

// UpdateBoard — настройки доски; имя берется из пути
func (s *Service) UpdateBoard(ctx context.Context, name string, b models.Board) error {
	b.Name = name
	return storage(s.boards.UpdateBoard(ctx, name, b))
}

// DeleteBoard — удаляет доску вместе с тредами
func (s *Service) DeleteBoard(ctx context.Context, name string) error {
	return storage(s.boards.DeleteBoard(ctx, name))
}

// ListThreads — треды доски
func (s *Service) ListThreads(ctx context.Context, board string) ([]models.Thread, error) {
	if _, err := s.boards.GetBoard(ctx, board); err != nil {
		return nil, storage(err)
	}
	t, err := s.boards.ListThreads(ctx, board)
	return t, storage(err)
}

// GetThread — посты треда в публичном виде
func (s *Service) GetThread(ctx context.Context, board string, id int64) ([]PublicPost, error) {
	if _, err := s.boards.GetThread(ctx, board, id); err != nil {
		return nil, storage(err)
	}
	posts, err := s.boards.ListPosts(ctx, board, id)
	if err != nil {
		return nil, storage(err)
	}
	out := make([]PublicPost, 0, len(posts))
	for _, p := range posts {
		name, trip := util.SplitTripcode(p.Name)
		out = append(out, PublicPost{
			ID:      p.ID,
			Date:    p.Date,
			Name:    name,
			Trip:    trip,
			Subject: p.Subject,
			Email:   p.Email,
			Comment: p.Comment,
		})
	}
	return out, nil
}

// CreateThread — новый тред; возвращает его id
func (s *Service) CreateThread(ctx context.Context, board string, cmd PostCommand, ip string) (int64, error) {
	if err := s.admitPost(ctx, board, cmd.Challenge, ip); err != nil {
		return 0, err
	}
	id, err := s.boards.NextPostID(ctx, board)
	if err != nil {
		return 0, storage(err)
	}
	op := s.newPost(cmd, ip)
	op.ID, op.Thread = id, id
	if err := s.boards.InsertThread(ctx, board, op); err != nil {
		return 0, storage(err)
	}
	return id, nil
}

// Reply — ответ в тред; email "sage" не поднимает тред
func (s *Service) Reply(ctx context.Context, board string, thread int64, cmd PostCommand, ip string) error {
	if err := s.admitPost(ctx, board, cmd.Challenge, ip); err != nil {
		return err
	}
	if _, err := s.boards.GetThread(ctx, board, thread); err != nil {
		return storage(err)
	}
	id, err := s.boards.NextPostID(ctx, board)
	if err != nil {
		return storage(err)
	}
	reply := s.newPost(cmd, ip)
	reply.ID, reply.Thread = id, thread
	return storage(s.boards.InsertReply(ctx, board, reply, reply.Email != sageEmail))
}

// DeletePost — удаление поста; удаление первого поста удаляет тред
func (s *Service) DeletePost(ctx context.Context, board string, id int64) error {
	return storage(s.boards.DeletePost(ctx, board, id))
}

// SetSticky — закрепление треда
func (s *Service) SetSticky(ctx context.Context, board string, thread int64, sticky bool) error {
	return storage(s.boards.SetSticky(ctx, board, thread, sticky))
}

// admitPost — доска существует, разрешение на постинг действительно, темп соблюден
func (s *Service) admitPost(ctx context.Context, board, grant, ip string) error {
	if _, err := s.boards.GetBoard(ctx, board); err != nil {
		return storage(err)
	}
	if err := s.AuthorizePosting(grant, ip); err != nil {
		return err
	}
	return s.guard.Check(ctx, board, ip)
}

// AuthorizePosting проверяет токен, выданный Challenges.Answer.
// Decode не проверяет форму payload: verif капчи подписан тем же секретом и
// содержит те же for/exp, поэтому токен с ra отвергается.
func (s *Service) AuthorizePosting(grant, ip string) error {
	var pl struct {
		models.PostingGrant
		RA string `json:"ra"`
	}
	if err := s.tokens.Decode(grant, &pl); err != nil || pl.RA != "" || pl.For == "" {
		return ErrPostingAuthInvalid
	}
	if s.clock.Now().UnixMilli() > pl.Exp {
		return ErrPostingAuthExpired
	}
	if pl.For != ip {
		return ErrPostingAuthMismatch
	}
	return nil
}

func (s *Service) newPost(cmd PostCommand, ip string) models.Post {
	return models.Post{
		Date:    s.clock.Now().UnixMilli(),
		Comment: util.CollapseNewlines(util.Truncate(cmd.Comment, maxCommentLen)),
		Name:    util.Truncate(cmd.Name, maxFieldLen),
		Subject: util.Truncate(cmd.Subject, maxFieldLen),
		Email:   util.Truncate(cmd.Email, maxFieldLen),
		IP:      ip,
	}
}
