package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/service"
)

const pgUniqueViolation = "23505"

// Store — адаптер Postgres, реализующий порты service.*
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// LastPostTime — максимум date по постам ip на доске
func (s *Store) LastPostTime(ctx context.Context, board, ip string) (int64, bool, error) {
	var last *int64
	err := s.pool.QueryRow(ctx, `SELECT MAX(`+colDate+`) FROM `+tablePosts+` WHERE `+colBoard+`=$1 AND `+colIP+`=$2`, board, ip).Scan(&last)
	if err != nil {
		return 0, false, err
	}
	if last == nil {
		return 0, false, nil
	}
	return *last, true, nil
}

// NextPostID — COUNT(*)+1 без блокировки, удаленные посты тоже считаются.
// Параллельные посты могут получить одинаковый id.
func (s *Store) NextPostID(ctx context.Context, board string) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+tablePosts+` WHERE `+colBoard+`=$1`, board).Scan(&n); err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (s *Store) ListBoards(ctx context.Context) ([]models.Board, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+boardColumns+` FROM `+tableBoards+` ORDER BY `+colName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBoard)
}

func (s *Store) GetBoard(ctx context.Context, name string) (models.Board, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+boardColumns+` FROM `+tableBoards+` WHERE `+colName+`=$1`, name)
	if err != nil {
		return models.Board{}, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBoard)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Board{}, service.ErrBoardNotFound
	}
	return b, err
}

func (s *Store) InsertBoard(ctx context.Context, b models.Board) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO `+tableBoards+` (`+boardColumns+`) VALUES ($1,$2,$3,$4,$5)`,
		b.Name, b.Title, b.FilesizeLimit, b.Worksafe, b.BumpLimit)
	return uniqueAs(err, service.ErrBoardExists)
}

func (s *Store) UpdateBoard(ctx context.Context, name string, b models.Board) error {
	tag, err := s.pool.Exec(ctx, `UPDATE `+tableBoards+` SET `+colTitle+`=$2, `+colFilesizeLimit+`=$3, `+colWorksafe+`=$4, `+colBumpLimit+`=$5 WHERE `+colName+`=$1`,
		name, b.Title, b.FilesizeLimit, b.Worksafe, b.BumpLimit)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrBoardNotFound
	}
	return nil
}

func (s *Store) DeleteBoard(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+tableBoards+` WHERE `+colName+`=$1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrBoardNotFound
	}
	return nil
}

func (s *Store) ListThreads(ctx context.Context, board string) ([]models.Thread, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+colID+`, `+colSticky+`, `+colLastBump+` FROM `+tableThreads+` WHERE `+colBoard+`=$1`+live+` ORDER BY `+colID, board)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanThread)
}

func (s *Store) GetThread(ctx context.Context, board string, id int64) (models.Thread, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+colID+`, `+colSticky+`, `+colLastBump+` FROM `+tableThreads+` WHERE `+colBoard+`=$1 AND `+colID+`=$2`+live, board, id)
	if err != nil {
		return models.Thread{}, err
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanThread)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Thread{}, service.ErrThreadNotFound
	}
	return t, err
}

func (s *Store) ListPosts(ctx context.Context, board string, thread int64) ([]models.Post, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+postColumns+` FROM `+tablePosts+` WHERE `+colBoard+`=$1 AND `+colThread+`=$2`+live+` ORDER BY `+colID, board, thread)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Post, error) {
		var p models.Post
		err := row.Scan(&p.ID, &p.Thread, &p.Date, &p.Name, &p.Subject, &p.Email, &p.Comment, &p.IP)
		return p, err
	})
}

// InsertThread — тред и его первый пост в одной транзакции
func (s *Store) InsertThread(ctx context.Context, board string, op models.Post) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO `+tableThreads+` (`+colBoard+`, `+colID+`, `+colSticky+`, `+colLastBump+`) VALUES ($1,$2,false,$3)`,
			board, op.ID, op.Date); err != nil {
			return uniqueAs(err, service.ErrPostIDTaken)
		}
		return insertPost(ctx, tx, board, op)
	})
}

func (s *Store) InsertReply(ctx context.Context, board string, reply models.Post, bump bool) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if bump {
			tag, err := tx.Exec(ctx, `UPDATE `+tableThreads+` SET `+colLastBump+`=$3 WHERE `+colBoard+`=$1 AND `+colID+`=$2`+live, board, reply.Thread, reply.Date)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return service.ErrThreadNotFound
			}
		}
		return insertPost(ctx, tx, board, reply)
	})
}

// DeletePost помечает пост удаленным; удаление первого поста снимает весь тред
func (s *Store) DeletePost(ctx context.Context, board string, id int64) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE `+tableThreads+` SET `+colDeleted+`=true WHERE `+colBoard+`=$1 AND `+colID+`=$2`+live, board, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			_, err := tx.Exec(ctx, `UPDATE `+tablePosts+` SET `+colDeleted+`=true WHERE `+colBoard+`=$1 AND `+colThread+`=$2`, board, id)
			return err
		}
		tag, err = tx.Exec(ctx, `UPDATE `+tablePosts+` SET `+colDeleted+`=true WHERE `+colBoard+`=$1 AND `+colID+`=$2`+live, board, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return service.ErrPostNotFound
		}
		return nil
	})
}

func (s *Store) SetSticky(ctx context.Context, board string, thread int64, sticky bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE `+tableThreads+` SET `+colSticky+`=$3 WHERE `+colBoard+`=$1 AND `+colID+`=$2`+live, board, thread, sticky)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrThreadNotFound
	}
	return nil
}

// UserRepository
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+tableAdmins).Scan(&n)
	return n, err
}

func (s *Store) GetUserByIdent(ctx context.Context, ident string) (models.AdminUser, error) {
	var u models.AdminUser
	var role string
	err := s.pool.QueryRow(ctx, `SELECT `+colID+`::text, `+colIdent+`, `+colPasswordHash+`, `+colRole+`, `+colCreatedAt+` FROM `+tableAdmins+` WHERE `+colIdent+`=$1`, ident).
		Scan(&u.ID, &u.Ident, &u.PasswordHash, &role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AdminUser{}, service.ErrNoSuchUser
	}
	u.Role = models.Role(role)
	return u, err
}

func (s *Store) InsertUser(ctx context.Context, u models.AdminUser) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO `+tableAdmins+` (`+colID+`, `+colIdent+`, `+colPasswordHash+`, `+colRole+`, `+colCreatedAt+`) VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Ident, u.PasswordHash, string(u.Role), u.CreatedAt)
	return uniqueAs(err, service.ErrUserExists)
}

const (
	boardColumns = colName + `, ` + colTitle + `, ` + colFilesizeLimit + `, ` + colWorksafe + `, ` + colBumpLimit
	postColumns  = colID + `, ` + colThread + `, ` + colDate + `, ` + colName + `, ` + colSubject + `, ` + colEmail + `, ` + colComment + `, ` + colIP
)

func scanBoard(row pgx.CollectableRow) (models.Board, error) {
	var b models.Board
	err := row.Scan(&b.Name, &b.Title, &b.FilesizeLimit, &b.Worksafe, &b.BumpLimit)
	return b, err
}

func scanThread(row pgx.CollectableRow) (models.Thread, error) {
	var t models.Thread
	err := row.Scan(&t.ID, &t.Sticky, &t.LastBump)
	return t, err
}

func insertPost(ctx context.Context, tx pgx.Tx, board string, p models.Post) error {
	_, err := tx.Exec(ctx, `INSERT INTO `+tablePosts+` (`+colBoard+`, `+postColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		board, p.ID, p.Thread, p.Date, p.Name, p.Subject, p.Email, p.Comment, p.IP)
	return err
}

// uniqueAs заменяет нарушение уникальности доменной ошибкой, остальные ошибки без изменений
func uniqueAs(err, domain error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain
	}
	return err
}
