// Package token issues and verifies the signed bearer tokens used by the API.
// Verification is stateless: there is no server-side session store and no
// revocation, the 1 hour expiry bounds the life of a leaked token.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pawtrail/internal/models"
)

// TTL is how long an issued token stays valid.
const TTL = time.Hour

// Claims is the identity claim set carried by every token.
type Claims struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	ProfilePicture *string `json:"profilePicture"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a single HMAC secret. The secret is
// injected at construction time instead of being read from ambient globals.
type Manager struct {
	secret []byte
}

func NewManager(secret string) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// Issue returns a signed token carrying the user's identity claims.
func (m *Manager) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and returns its claims. Any malformed, mis-signed
// or expired token is rejected.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ID == "" {
		return nil, errors.New("invalid token user")
	}

	return claims, nil
}
