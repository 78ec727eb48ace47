package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/session"
)

// HeaderState menentukan tampilan header: tombol login/register untuk
// anonymous, atau username + avatar untuk user yang sudah login.
type HeaderState struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	AvatarInitial string `json:"avatar_initial,omitempty"`
}

type HeaderService interface {
	State(ctx context.Context, sessionID string) (*HeaderState, error)
	Logout(ctx context.Context, sessionID string) error
}

type headerServiceImpl struct {
	store     session.Store
	jwtSecret []byte
}

func NewHeaderService(store session.Store, jwtSecret string) HeaderService {
	return &headerServiceImpl{
		store:     store,
		jwtSecret: []byte(jwtSecret),
	}
}

// State membaca token dari session store dan memvalidasinya. Token yang
// hilang, expired, atau tidak valid bukan error: user dirender anonymous.
func (s *headerServiceImpl) State(ctx context.Context, sessionID string) (*HeaderState, error) {
	anonymous := &HeaderState{Authenticated: false}
	if sessionID == "" {
		return anonymous, nil
	}

	token, err := s.store.Get(ctx, sessionID, session.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if token == "" {
		return anonymous, nil
	}

	claims, err := s.validateToken(token)
	if err != nil {
		logger.Warn("State: invalid session token, rendering anonymous: %v", err)
		return anonymous, nil
	}

	username, err := s.store.Get(ctx, sessionID, session.KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if username == "" {
		// Fallback ke local-part email di claim token
		if email, ok := claims["email"].(string); ok {
			username = strings.SplitN(email, "@", 2)[0]
		}
	}

	return &HeaderState{
		Authenticated: true,
		Username:      username,
		AvatarInitial: avatarInitial(username),
	}, nil
}

func (s *headerServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Clear(ctx, sessionID)
}

func (s *headerServiceImpl) validateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func avatarInitial(username string) string {
	for _, r := range username {
		return string(unicode.ToUpper(r))
	}
	return ""
}
