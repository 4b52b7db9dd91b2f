package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vbncursed/vkr/board-service/internal/crypto"
	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/repo/memory"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

const testSecret = "50b2c6290ea87497f6ef32390197a9b6"

var t0 = time.UnixMilli(1_700_000_000_000)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixedPuzzle struct {
	solution string
	err      error
}

func (p fixedPuzzle) Render(context.Context) (bsvc.Puzzle, error) {
	if p.err != nil {
		return bsvc.Puzzle{}, p.err
	}
	return bsvc.Puzzle{Image: "data:image/png;base64,AAAA", Solution: p.solution}, nil
}

type fixture struct {
	clock      *fakeClock
	store      *memory.Store
	signer     *crypto.Signer
	gate       *bsvc.RoleGate
	svc        *bsvc.Service
	challenges *bsvc.Challenges
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	signer, err := crypto.NewSigner([]byte(testSecret))
	require.NoError(t, err)
	sealer, err := crypto.NewSealer([]byte(testSecret))
	require.NoError(t, err)

	clock := &fakeClock{now: t0}
	store := memory.New()
	gate := bsvc.NewRoleGate(signer, clock, models.DefaultRing)
	return &fixture{
		clock:      clock,
		store:      store,
		signer:     signer,
		gate:       gate,
		svc:        bsvc.New(store, store, signer, gate, clock, bsvc.WithBcryptCost(bcrypt.MinCost)),
		challenges: bsvc.NewChallenges(signer, sealer, fixedPuzzle{solution: "123456"}, clock),
	}
}

func (f *fixture) board(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, f.svc.CreateBoard(context.Background(), models.Board{Name: name, Title: name, BumpLimit: 300}))
}

// grant проходит капчу от имени ip и возвращает токен разрешения на постинг
func (f *fixture) grant(t *testing.T, ip string) string {
	t.Helper()
	ch, err := f.challenges.Issue(context.Background(), ip)
	require.NoError(t, err)
	g, err := f.challenges.Answer(ip, "123456", ch.Verif)
	require.NoError(t, err)
	return g
}

func (f *fixture) bearer(t *testing.T, role models.Role, ttl time.Duration) string {
	t.Helper()
	tok, err := f.signer.Create(models.Identity{Role: role, Expiration: f.clock.Now().Add(ttl).UnixMilli()})
	require.NoError(t, err)
	return "Bearer " + tok
}
