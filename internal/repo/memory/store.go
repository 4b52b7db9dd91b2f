// Package memory — хранилище в памяти процесса для разработки и тестов.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/service"
)

// Удаленные посты и треды остаются в списке: count+1 считает их, поэтому
// после модерации новые id не совпадают с выданными.
type thread struct {
	models.Thread
	deleted bool
}

type post struct {
	models.Post
	deleted bool
}

type board struct {
	settings models.Board
	threads  map[int64]*thread
	posts    []post
}

// Store реализует service.BoardRepository и service.UserRepository
type Store struct {
	mu     sync.RWMutex
	boards map[string]*board
	order  []string
	users  map[string]models.AdminUser
}

func New() *Store {
	return &Store{boards: map[string]*board{}, users: map[string]models.AdminUser{}}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) LastPostTime(_ context.Context, name, ip string) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return 0, false, nil
	}
	var last int64
	found := false
	for _, p := range b.posts {
		if p.IP == ip && (!found || p.Date > last) {
			last, found = p.Date, true
		}
	}
	return last, found, nil
}

func (s *Store) NextPostID(_ context.Context, name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return 0, service.ErrBoardNotFound
	}
	return int64(len(b.posts)) + 1, nil
}

func (s *Store) ListBoards(context.Context) ([]models.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Board, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.boards[name].settings)
	}
	return out, nil
}

func (s *Store) GetBoard(_ context.Context, name string) (models.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return models.Board{}, service.ErrBoardNotFound
	}
	return b.settings, nil
}

func (s *Store) InsertBoard(_ context.Context, settings models.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[settings.Name]; ok {
		return service.ErrBoardExists
	}
	s.boards[settings.Name] = &board{settings: settings, threads: map[int64]*thread{}}
	s.order = append(s.order, settings.Name)
	return nil
}

func (s *Store) UpdateBoard(_ context.Context, name string, settings models.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return service.ErrBoardNotFound
	}
	b.settings = settings
	return nil
}

func (s *Store) DeleteBoard(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[name]; !ok {
		return service.ErrBoardNotFound
	}
	delete(s.boards, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return nil
}

func (s *Store) ListThreads(_ context.Context, name string) ([]models.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return nil, service.ErrBoardNotFound
	}
	out := make([]models.Thread, 0, len(b.threads))
	for _, t := range b.threads {
		if !t.deleted {
			out = append(out, t.Thread)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetThread(_ context.Context, name string, id int64) (models.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return models.Thread{}, service.ErrBoardNotFound
	}
	t, ok := b.threads[id]
	if !ok || t.deleted {
		return models.Thread{}, service.ErrThreadNotFound
	}
	return t.Thread, nil
}

func (s *Store) ListPosts(_ context.Context, name string, thread int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[name]
	if !ok {
		return nil, service.ErrBoardNotFound
	}
	var out []models.Post
	for _, p := range b.posts {
		if p.Thread == thread && !p.deleted {
			out = append(out, p.Post)
		}
	}
	return out, nil
}

func (s *Store) InsertThread(_ context.Context, name string, op models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return service.ErrBoardNotFound
	}
	if _, taken := b.threads[op.ID]; taken {
		return service.ErrPostIDTaken
	}
	b.threads[op.ID] = &thread{Thread: models.Thread{ID: op.ID, LastBump: op.Date}}
	b.posts = append(b.posts, post{Post: op})
	return nil
}

func (s *Store) InsertReply(_ context.Context, name string, reply models.Post, bump bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return service.ErrBoardNotFound
	}
	t, ok := b.threads[reply.Thread]
	if !ok || t.deleted {
		return service.ErrThreadNotFound
	}
	if bump {
		t.LastBump = reply.Date
	}
	b.posts = append(b.posts, post{Post: reply})
	return nil
}

func (s *Store) DeletePost(_ context.Context, name string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return service.ErrBoardNotFound
	}
	if t, ok := b.threads[id]; ok && !t.deleted {
		t.deleted = true
		for i := range b.posts {
			if b.posts[i].Thread == id {
				b.posts[i].deleted = true
			}
		}
		return nil
	}
	found := false
	for i := range b.posts {
		if b.posts[i].ID == id && !b.posts[i].deleted {
			b.posts[i].deleted, found = true, true
		}
	}
	if !found {
		return service.ErrPostNotFound
	}
	return nil
}

func (s *Store) SetSticky(_ context.Context, name string, thread int64, sticky bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return service.ErrBoardNotFound
	}
	t, ok := b.threads[thread]
	if !ok || t.deleted {
		return service.ErrThreadNotFound
	}
	t.Sticky = sticky
	return nil
}

func (s *Store) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *Store) GetUserByIdent(_ context.Context, ident string) (models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[ident]
	if !ok {
		return models.AdminUser{}, service.ErrNoSuchUser
	}
	return u, nil
}

func (s *Store) InsertUser(_ context.Context, u models.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Ident]; ok {
		return service.ErrUserExists
	}
	s.users[u.Ident] = u
	return nil
}
