package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when a request carries no session token.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned on any signature, expiry or claim failure.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims identifies the authenticated user inside a session token.
type Claims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed session tokens. The secret and
// TTL are injected at startup; tokens use a fixed TTL with no sliding
// refresh, so a session lasts exactly one TTL from login.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(s.ttl).Unix(),
		"iat":    time.Now().Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, _ := mapClaims["userId"].(string)
	email, _ := mapClaims["email"].(string)
	if userID == "" || email == "" {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: userID, Email: email}, nil
}
