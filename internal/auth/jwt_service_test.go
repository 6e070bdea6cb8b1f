package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_SignAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.SignToken(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)

	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// Expiry is pinned to one hour after issuance.
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").SignToken(1, "a@example.com")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedPayload(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.SignToken(7, "b@example.com")
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"email":"evil@example.com","sub":"999"}`))

	_, err = svc.ValidateToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	const secret = "test-secret"

	claims := &Claims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = NewJWTService(secret).ValidateToken(token)
	assert.Error(t, err)
}

func TestClaims_UserIDRejectsNonNumericSubject(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"}}
	_, err := claims.UserID()
	assert.Error(t, err)
}
