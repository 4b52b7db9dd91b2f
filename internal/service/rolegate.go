package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vbncursed/vkr/board-service/internal/models"
)

const bearerPrefix = "bearer "

// RoleGate — проверка bearer-токена и минимальной роли. Роли образуют кольцо:
// роль с индексом i включает права всех ролей с меньшим индексом.
type RoleGate struct {
	tokens Tokens
	clock  Clock
	ring   []models.Role
}

func NewRoleGate(tokens Tokens, clock Clock, ring []models.Role) *RoleGate {
	return &RoleGate{tokens: tokens, clock: clock, ring: slices.Clone(ring)}
}

// Ring — роли от младшей к старшей
func (g *RoleGate) Ring() []models.Role { return slices.Clone(g.ring) }

// Top — старшая роль кольца
func (g *RoleGate) Top() models.Role { return g.ring[len(g.ring)-1] }

// Known — входит ли роль в кольцо
func (g *RoleGate) Known(r models.Role) bool { return slices.Contains(g.ring, r) }

// MustRank — индекс роли; неизвестная роль на границе маршрута — ошибка программы
func (g *RoleGate) MustRank(r models.Role) int {
	i := slices.Index(g.ring, r)
	if i < 0 {
		panic(fmt.Sprintf("rolegate: role %q is not in the ring", r))
	}
	return i
}

// Identify — разбор заголовка Authorization без проверки роли
func (g *RoleGate) Identify(authorization string) (models.Identity, error) {
	if len(authorization) < len(bearerPrefix) || !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return models.Identity{}, ErrAuthRequired
	}
	tok := authorization[len(bearerPrefix):]
	if tok == "" {
		return models.Identity{}, ErrAuthRequired
	}
	var id models.Identity
	if err := g.tokens.Decode(tok, &id); err != nil {
		return models.Identity{}, ErrAuthInvalid
	}
	if id.Role == "" {
		return models.Identity{}, ErrAuthInvalid
	}
	if id.Expiration <= g.clock.Now().UnixMilli() {
		return models.Identity{}, ErrAuthExpired
	}
	return id, nil
}

// Authorize пропускает, если index(role) >= index(minRole)
func (g *RoleGate) Authorize(authorization string, minRole models.Role) (models.Identity, error) {
	need := g.MustRank(minRole)
	id, err := g.Identify(authorization)
	if err != nil {
		return models.Identity{}, err
	}
	if have := slices.Index(g.ring, id.Role); have < need {
		return models.Identity{}, ErrAuthInsufficientRole
	}
	return id, nil
}
