package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/vehicle-registry-be/internal/models"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), 2*time.Hour)
	user := models.User{Username: "editor", Role: models.RoleEditor}

	tok, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "editor", claims.Username)
	require.Equal(t, models.RoleEditor, claims.Role)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -1*time.Second)
	tok, err := svc.Issue(models.User{Username: "admin", Role: models.RoleAdministrator})
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	tok, err := issuer.Issue(models.User{Username: "editor", Role: models.RoleEditor})
	require.NoError(t, err)

	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)
	_, err = verifier.Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Validate(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour)
	tok, err := svc.Issue(models.User{Username: "editor", Role: models.RoleEditor})
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer covers
	// the altered claims.
	tampered := []byte(tok)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = svc.Validate(string(tampered))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_UnknownRole(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	claims := &Claims{
		Username: "editor",
		Role:     "Superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	svc := NewTokenService(secret, time.Hour)
	_, err = svc.Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
