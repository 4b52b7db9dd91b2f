package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/crypto"
	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

const ip = "203.0.113.7"

func TestChallenges_IssueAndAnswer(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ch, err := f.challenges.Issue(context.Background(), ip)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", ch.Cap)

	verif, err := crypto.DecodeAs[models.ChallengeVerif](f.signer, ch.Verif)
	require.NoError(t, err)
	assert.Equal(t, ip, verif.For)
	assert.Equal(t, t0.Add(bsvc.ChallengeTTL).UnixMilli(), verif.Exp)
	assert.NotContains(t, verif.RA, "123456", "solution must not travel in clear text")

	tok, err := f.challenges.Answer(ip, "123456", ch.Verif)
	require.NoError(t, err)
	grant, err := crypto.DecodeAs[models.PostingGrant](f.signer, tok)
	require.NoError(t, err)
	assert.Equal(t, models.PostingGrant{For: ip, Exp: t0.Add(24 * time.Hour).UnixMilli()}, grant)
}

func TestChallenges_SingleViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		advance time.Duration
		ip      string
		answer  string
		want    error
	}{
		{name: "all good", ip: ip, answer: "123456"},
		{name: "exactly at exp", advance: bsvc.ChallengeTTL, ip: ip, answer: "123456"},
		{name: "expired", advance: bsvc.ChallengeTTL + time.Millisecond, ip: ip, answer: "123456", want: bsvc.ErrChallengeExpired},
		{name: "other ip", ip: "198.51.100.1", answer: "123456", want: bsvc.ErrChallengeAudienceMismatch},
		{name: "wrong answer", ip: ip, answer: "654321", want: bsvc.ErrChallengeWrongAnswer},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			ch, err := f.challenges.Issue(context.Background(), ip)
			require.NoError(t, err)
			f.clock.Advance(tt.advance)

			_, err = f.challenges.Answer(tt.ip, tt.answer, ch.Verif)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			for _, other := range []error{bsvc.ErrChallengeInvalid, bsvc.ErrChallengeExpired, bsvc.ErrChallengeAudienceMismatch, bsvc.ErrChallengeWrongAnswer} {
				if other != tt.want {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestChallenges_InvalidVerif(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ch, err := f.challenges.Issue(context.Background(), ip)
	require.NoError(t, err)

	_, err = f.challenges.Answer(ip, "123456", ch.Verif+"x")
	assert.ErrorIs(t, err, bsvc.ErrChallengeInvalid)

	_, err = f.challenges.Answer(ip, "123456", "not-a-token")
	assert.ErrorIs(t, err, bsvc.ErrChallengeInvalid)

	// подписанный токен без ra
	grant := f.grant(t, ip)
	_, err = f.challenges.Answer(ip, "123456", grant)
	assert.ErrorIs(t, err, bsvc.ErrChallengeInvalid)
}

func TestChallenges_VerifIsReusableUntilExpiry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ch, err := f.challenges.Issue(context.Background(), ip)
	require.NoError(t, err)

	_, err = f.challenges.Answer(ip, "000000", ch.Verif)
	require.ErrorIs(t, err, bsvc.ErrChallengeWrongAnswer)
	_, err = f.challenges.Answer(ip, "123456", ch.Verif)
	require.NoError(t, err)
	_, err = f.challenges.Answer(ip, "123456", ch.Verif)
	require.NoError(t, err)

	f.clock.Advance(6 * time.Minute)
	_, err = f.challenges.Answer(ip, "123456", ch.Verif)
	assert.ErrorIs(t, err, bsvc.ErrChallengeExpired)
}

func TestChallenges_RendererFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	boom := errors.New("no fonts")
	sealer, err := crypto.NewSealer([]byte(testSecret))
	require.NoError(t, err)
	ch := bsvc.NewChallenges(f.signer, sealer, fixedPuzzle{err: boom}, f.clock)

	_, err = ch.Issue(context.Background(), ip)
	assert.ErrorIs(t, err, boom)
}

func TestCaptchaRenderer(t *testing.T) {
	t.Parallel()
	p, err := bsvc.NewCaptchaRenderer().Render(context.Background())
	require.NoError(t, err)
	assert.Len(t, p.Solution, 6)
	for _, r := range p.Solution {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.Contains(t, p.Image, "data:image/png;base64,")
}
