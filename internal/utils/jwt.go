package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims are the session token claims: member id plus email. There is no
// refresh mechanism; an expired token requires a fresh login.
type TokenClaims struct {
	MemberID string `json:"memberId"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for the provided member.
func GenerateToken(secret string, memberID uuid.UUID, email string, ttl time.Duration) (string, error) {
	claims := &TokenClaims{
		MemberID: memberID.String(),
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the embedded member ID and email.
func ParseToken(secret, tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		id, err := uuid.Parse(claims.MemberID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return id, claims.Email, nil
	}

	return uuid.Nil, "", jwt.ErrTokenInvalidClaims
}
