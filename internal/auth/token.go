// Package auth issues and verifies the signed bearer tokens that back user
// sessions.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the subset of token claims the rest of the application consumes.
type Claims struct {
	UserID    string
	Email     string
	SessionID string
}

// TokenManager signs and verifies HS256 tokens. Each issued token carries a
// unique session id so individual sign-ins can be revoked server-side.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenManager(secret string, ttl time.Duration, issuer string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, issuer: issuer}
}

// Issue signs a token for the user and returns it with the generated session
// id and expiry.
func (m *TokenManager) Issue(userID, email string) (string, string, time.Time, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"jti":     sessionID,
		"iss":     m.issuer,
		"iat":     jwt.NewNumericDate(time.Now()),
		"exp":     jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, sessionID, expiresAt, nil
}

// Verify parses the token, checks the signature and expiry, and extracts the
// claims the application needs.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	sessionID, ok := mapClaims["jti"].(string)
	if !ok || sessionID == "" {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: userID, Email: email, SessionID: sessionID}, nil
}
