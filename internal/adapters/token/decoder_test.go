package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

func TestDecoderExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	raw := signed(t, jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := NewDecoder().Expiry(raw)

	require.NoError(t, err)
	assert.True(t, exp.Equal(got), "got %s", got)
}

func TestDecoderExpiryIgnoresSignature(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	// Tamper with the signature segment.
	raw = raw[:len(raw)-2] + "xx"

	got, err := NewDecoder().Expiry(raw)

	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestDecoderExpiryErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		is    error
	}{
		{name: "not a jwt", token: "opaque-token"},
		{name: "empty", token: ""},
		{name: "missing exp", token: signed(t, jwt.RegisteredClaims{Subject: "acc-1"}), is: ErrNoExpiry},
		{name: "malformed exp", token: signed(t, jwt.MapClaims{"exp": "tomorrow"})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDecoder().Expiry(tt.token)

			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
