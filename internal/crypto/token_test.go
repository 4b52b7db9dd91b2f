package crypto_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/crypto"
)

type identity struct {
	Role       string `json:"role"`
	Expiration int64  `json:"expiration"`
}

func newSigner(t *testing.T) *crypto.Signer {
	t.Helper()
	s, err := crypto.NewSigner([]byte("50b2c6290ea87497f6ef32390197a9b6"))
	require.NoError(t, err)
	return s
}

func TestNewSigner_EmptySecret(t *testing.T) {
	_, err := crypto.NewSigner(nil)
	assert.ErrorIs(t, err, crypto.ErrMissingSecret)
}

func TestSigner_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newSigner(t)

	tests := []struct {
		name    string
		payload identity
	}{
		{name: "administrator", payload: identity{Role: "administrator", Expiration: 1700000000000}},
		{name: "zero payload", payload: identity{}},
		{name: "unicode role", payload: identity{Role: "модератор", Expiration: 1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok, err := s.Create(tt.payload)
			require.NoError(t, err)
			assert.Len(t, strings.Split(tok, "."), 3)
			assert.True(t, s.Verify(tok))

			got, err := crypto.DecodeAs[identity](s, tok)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, got)
		})
	}
}

func TestSigner_Header(t *testing.T) {
	s := newSigner(t)
	tok, err := s.Create(map[string]int{"a": 1})
	require.NoError(t, err)

	hdr, err := base64.RawURLEncoding.DecodeString(strings.Split(tok, ".")[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(hdr))
}

func TestSigner_Deterministic(t *testing.T) {
	s := newSigner(t)
	p := identity{Role: "janitor", Expiration: 42}

	a, err := s.Create(p)
	require.NoError(t, err)
	b, err := s.Create(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSigner_BitFlipInEverySegment(t *testing.T) {
	s := newSigner(t)
	tok, err := s.Create(identity{Role: "developer", Expiration: 99})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	for seg := range parts {
		raw, err := base64.RawURLEncoding.DecodeString(parts[seg])
		require.NoError(t, err)
		for i := range raw {
			for bit := 0; bit < 8; bit++ {
				flipped := make([]byte, len(raw))
				copy(flipped, raw)
				flipped[i] ^= 1 << bit

				tampered := make([]string, len(parts))
				copy(tampered, parts)
				tampered[seg] = base64.RawURLEncoding.EncodeToString(flipped)
				assert.False(t, s.Verify(strings.Join(tampered, ".")), "segment %d byte %d bit %d", seg, i, bit)
			}
		}
	}
}

func TestSigner_Decode_Invalid(t *testing.T) {
	s := newSigner(t)
	other, err := crypto.NewSigner([]byte("another-secret"))
	require.NoError(t, err)
	foreign, err := other.Create(identity{Role: "administrator"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "two segments", token: "a.b"},
		{name: "four segments", token: "a.b.c.d"},
		{name: "foreign secret", token: foreign},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var v identity
			assert.ErrorIs(t, s.Decode(tt.token, &v), crypto.ErrInvalidToken)
		})
	}
}

func TestSigner_DecodeIgnoresPayloadShape(t *testing.T) {
	s := newSigner(t)
	tok, err := s.Create(map[string]any{"for": "10.0.0.1", "exp": 5})
	require.NoError(t, err)

	got, err := crypto.DecodeAs[identity](s, tok)
	require.NoError(t, err)
	assert.Equal(t, identity{}, got)
}
