package service

import (
	"context"
	"time"

	"github.com/vbncursed/vkr/board-service/internal/models"
)

// Clock — абстракция времени для тестируемости
type Clock interface {
	Now() time.Time
}

// Tokens — порт сервиса подписанных токенов
type Tokens interface {
	Create(payload any) (string, error)
	Decode(token string, v any) error
}

// Sealer — симметричное шифрование ответа капчи
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// Puzzle — отрисованная капча и ее решение
type Puzzle struct {
	Image    string
	Solution string
}

// PuzzleRenderer — внешний генератор капчи
type PuzzleRenderer interface {
	Render(ctx context.Context) (Puzzle, error)
}

// PostStore — история постинга, нужная RateGuard и нумерации постов
type PostStore interface {
	// LastPostTime — время (unix ms) последнего поста ip на доске по всем тредам
	LastPostTime(ctx context.Context, board, ip string) (ms int64, ok bool, err error)
	// NextPostID — количество постов доски + 1, без транзакционной защиты
	NextPostID(ctx context.Context, board string) (int64, error)
}

// BoardRepository — порт для досок, тредов и постов
type BoardRepository interface {
	PostStore

	ListBoards(ctx context.Context) ([]models.Board, error)
	GetBoard(ctx context.Context, name string) (models.Board, error)
	InsertBoard(ctx context.Context, b models.Board) error
	UpdateBoard(ctx context.Context, name string, b models.Board) error
	DeleteBoard(ctx context.Context, name string) error

	ListThreads(ctx context.Context, board string) ([]models.Thread, error)
	GetThread(ctx context.Context, board string, id int64) (models.Thread, error)
	ListPosts(ctx context.Context, board string, thread int64) ([]models.Post, error)
	InsertThread(ctx context.Context, board string, op models.Post) error
	InsertReply(ctx context.Context, board string, reply models.Post, bump bool) error
	DeletePost(ctx context.Context, board string, id int64) error
	SetSticky(ctx context.Context, board string, thread int64, sticky bool) error
}

// UserRepository — учетные записи персонала
type UserRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	GetUserByIdent(ctx context.Context, ident string) (models.AdminUser, error)
	InsertUser(ctx context.Context, u models.AdminUser) error
}

// PostCommand — пост после проверки контрактом; отсутствующие поля пусты
type PostCommand struct {
	Comment   string
	Name      string
	Subject   string
	Email     string
	Challenge string
}

// LoginCommand — учетные данные POST /admin/login
type LoginCommand struct {
	Ident string
	Pass  string
}

// NewUserCommand — создание учетной записи администратором
type NewUserCommand struct {
	Ident string
	Pass  string
	Role  models.Role
}

// PublicPost — пост в том виде, в каком он уходит клиенту
type PublicPost struct {
	ID      int64  `json:"id"`
	Date    int64  `json:"date"`
	Name    string `json:"name,omitempty"`
	Trip    string `json:"trip,omitempty"`
	Subject string `json:"subject,omitempty"`
	Email   string `json:"email,omitempty"`
	Comment string `json:"comment,omitempty"`
}
