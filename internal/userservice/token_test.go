package userservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("secret-one", "BlogAPI", "BlogAPI", time.Hour)
	u := &User{ID: 42, Role: RoleAdmin}

	token, err := tm.Issue(u)
	require.NoError(t, err)

	p, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 42, p.UserID)
	assert.Equal(t, RoleAdmin, p.Role)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("secret-two", "BlogAPI", "BlogAPI", time.Hour)
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewTokenManager("secret-one", "BlogAPI", "SomethingElse", time.Hour)
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("secret-one", "SomethingElse", "BlogAPI", time.Hour)
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenManager("secret-one", "BlogAPI", "BlogAPI", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := Claims{
			Role: "Admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				Issuer:    "BlogAPI",
				Audience:  jwt.ClaimStrings{"BlogAPI"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tm.Parse(none)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			Role: "Root",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				Issuer:    "BlogAPI",
				Audience:  jwt.ClaimStrings{"BlogAPI"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-one"))
		require.NoError(t, err)

		_, err = tm.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestDefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", "BlogAPI", "BlogAPI", 0)
	assert.Equal(t, DefaultTokenTTL, tm.ttl)
}
