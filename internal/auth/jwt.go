// Package auth issues and verifies the signed bearer tokens returned by login.
package auth

import (
	"time"

	"contact_service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the token payload: the registered claims plus the
// authenticated user's id, name, and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func GenerateToken(userID int64, name, email string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
	})

	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
