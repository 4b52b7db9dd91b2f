package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

func TestRoleGate_RingAdmission(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ring := models.DefaultRing

	for hi, have := range ring {
		for ni, need := range ring {
			header := f.bearer(t, have, time.Hour)
			id, err := f.gate.Authorize(header, need)
			if hi >= ni {
				require.NoError(t, err, "%s should pass %s", have, need)
				assert.Equal(t, have, id.Role)
			} else {
				assert.ErrorIs(t, err, bsvc.ErrAuthInsufficientRole, "%s should not pass %s", have, need)
			}
		}
	}
}

func TestRoleGate_Expiry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	tests := []struct {
		name string
		ttl  time.Duration
		want error
	}{
		{name: "valid", ttl: time.Millisecond},
		{name: "expires now", ttl: 0, want: bsvc.ErrAuthExpired},
		{name: "expired", ttl: -time.Hour, want: bsvc.ErrAuthExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.gate.Authorize(f.bearer(t, models.RoleAdministrator, tt.ttl), models.RoleJanitor)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRoleGate_Identify(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	valid := f.bearer(t, models.RoleModerator, time.Hour)

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{name: "missing", header: "", want: bsvc.ErrAuthRequired},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", want: bsvc.ErrAuthRequired},
		{name: "bearer without token", header: "Bearer ", want: bsvc.ErrAuthRequired},
		{name: "garbage token", header: "Bearer a.b.c", want: bsvc.ErrAuthInvalid},
		{name: "lower case scheme", header: "bearer " + valid[len("Bearer "):]},
		{name: "upper case scheme", header: "BEARER " + valid[len("Bearer "):]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := f.gate.Identify(tt.header)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.True(t, bsvc.IsAuthError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.RoleModerator, id.Role)
		})
	}
}

func TestRoleGate_TokenWithoutRole(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	tok, err := f.signer.Create(models.PostingGrant{For: "10.0.0.1", Exp: t0.Add(time.Hour).UnixMilli()})
	require.NoError(t, err)

	_, err = f.gate.Authorize("Bearer "+tok, models.RoleJanitor)
	assert.ErrorIs(t, err, bsvc.ErrAuthInvalid)
}

func TestRoleGate_UnknownRoleInToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.gate.Authorize(f.bearer(t, "overlord", time.Hour), models.RoleJanitor)
	assert.ErrorIs(t, err, bsvc.ErrAuthInsufficientRole)
}

func TestRoleGate_MustRank(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	assert.Equal(t, 0, f.gate.MustRank(models.RoleJanitor))
	assert.Equal(t, 3, f.gate.MustRank(models.RoleAdministrator))
	assert.Equal(t, models.RoleAdministrator, f.gate.Top())
	assert.Panics(t, func() { f.gate.MustRank("overlord") })
	assert.Panics(t, func() { _, _ = f.gate.Authorize("", "overlord") })
}
