package service

import (
	"context"
	"errors"
	"time"

	"github.com/vbncursed/vkr/board-service/internal/models"
)

const (
	ChallengeTTL    = 5 * time.Minute
	PostingGrantTTL = 24 * time.Hour
)

// Challenges — двухфазная капча без серверного состояния.
// verif не инвалидируется после ответа и годен до exp.
type Challenges struct {
	tokens   Tokens
	sealer   Sealer
	renderer PuzzleRenderer
	clock    Clock
}

func NewChallenges(tokens Tokens, sealer Sealer, renderer PuzzleRenderer, clock Clock) *Challenges {
	return &Challenges{tokens: tokens, sealer: sealer, renderer: renderer, clock: clock}
}

// Issue — выдать капчу для ip
func (c *Challenges) Issue(ctx context.Context, ip string) (models.Challenge, error) {
	p, err := c.renderer.Render(ctx)
	if err != nil {
		return models.Challenge{}, err
	}
	ra, err := c.sealer.Seal(p.Solution)
	if err != nil {
		return models.Challenge{}, err
	}
	verif, err := c.tokens.Create(models.ChallengeVerif{
		For: ip,
		Exp: c.clock.Now().Add(ChallengeTTL).UnixMilli(),
		RA:  ra,
	})
	if err != nil {
		return models.Challenge{}, err
	}
	return models.Challenge{Cap: p.Image, Verif: verif}, nil
}

// Answer — проверить ответ; успех дает токен разрешения на постинг на 24 часа
func (c *Challenges) Answer(ip, answer, verif string) (string, error) {
	var pl models.ChallengeVerif
	if err := c.tokens.Decode(verif, &pl); err != nil {
		return "", ErrChallengeInvalid
	}
	now := c.clock.Now()
	if now.UnixMilli() > pl.Exp {
		return "", ErrChallengeExpired
	}
	if pl.For != ip {
		return "", ErrChallengeAudienceMismatch
	}
	solution, err := c.sealer.Open(pl.RA)
	if err != nil {
		return "", errors.Join(ErrChallengeInvalid, err)
	}
	if solution != answer {
		return "", ErrChallengeWrongAnswer
	}
	return c.tokens.Create(models.PostingGrant{For: ip, Exp: now.Add(PostingGrantTTL).UnixMilli()})
}
