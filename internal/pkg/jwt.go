package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenParseFailure = errors.New("token parse failure")
)

// TokenSecret is set from config at startup.
var TokenSecret = []byte("secret-key")

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// EncodeToken signs the user id into a bearer token. No expiry claim is
// set; the session cookie bounds the credential's lifetime instead.
func EncodeToken(userID string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Subject:  "session",
		},
	})
	return token.SignedString(TokenSecret)
}

// DecodeToken verifies the signature and returns the embedded user id.
func DecodeToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return TokenSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenParseFailure
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
