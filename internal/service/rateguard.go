package service

import (
	"context"
	"time"
)

// MinPostInterval — минимальный интервал между постами одного ip на доске
const MinPostInterval = 60 * time.Second

// CadenceError — ErrTooFast с временем до следующей разрешенной попытки
type CadenceError struct {
	RetryAfter time.Duration
}

func (e *CadenceError) Error() string { return ErrTooFast.Error() }

func (e *CadenceError) Unwrap() error { return ErrTooFast }

// RateGuard владеет только порогом и сравнением; историю дает PostStore
type RateGuard struct {
	posts    PostStore
	clock    Clock
	interval time.Duration
}

func NewRateGuard(posts PostStore, clock Clock) *RateGuard {
	return &RateGuard{posts: posts, clock: clock, interval: MinPostInterval}
}

// Check — ErrTooFast, если с последнего поста прошло меньше интервала (ровно интервал допустим)
func (g *RateGuard) Check(ctx context.Context, board, ip string) error {
	last, ok, err := g.posts.LastPostTime(ctx, board, ip)
	if err != nil {
		return storage(err)
	}
	if !ok {
		return nil
	}
	if elapsed := g.clock.Now().UnixMilli() - last; elapsed < g.interval.Milliseconds() {
		return &CadenceError{RetryAfter: time.Duration(g.interval.Milliseconds()-elapsed) * time.Millisecond}
	}
	return nil
}
