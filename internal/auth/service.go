package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for expired, malformed, or wrongly
// signed session tokens.
var ErrInvalidToken = errors.New("invalid session token")

// Service issues and verifies phone-number session tokens.
type Service struct {
	repo        *Repository
	secret      []byte
	adminPhones map[string]struct{}
}

// NewService creates the auth service. adminPhones lists the phone
// numbers that receive the admin role on login.
func NewService(repo *Repository, secret string, adminPhones []string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	admins := make(map[string]struct{}, len(adminPhones))
	for _, p := range adminPhones {
		normalized, err := NormalizePhone(p)
		if err != nil {
			return nil, fmt.Errorf("bad admin phone: %w", err)
		}
		admins[normalized] = struct{}{}
	}
	return &Service{repo: repo, secret: []byte(secret), adminPhones: admins}, nil
}

// Login normalizes the phone, upserts the user, and mints a session
// token. There is no password: the phone number is the whole identity
// scheme.
func (s *Service) Login(ctx context.Context, rawPhone string) (User, string, error) {
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return User{}, "", err
	}

	role := RoleUser
	if _, ok := s.adminPhones[phone]; ok {
		role = RoleAdmin
	}

	user, err := s.repo.Upsert(ctx, phone, phone, role)
	if err != nil {
		return User{}, "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"phone": user.Phone,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return User{}, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return user, signed, nil
}

// Verify parses a session token and returns the identity it carries.
func (s *Service) Verify(tokenString string) (User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrInvalidToken
	}

	phone, _ := claims["phone"].(string)
	role, _ := claims["role"].(string)
	if phone == "" || role == "" {
		return User{}, ErrInvalidToken
	}

	return User{Phone: phone, Name: phone, Role: role}, nil
}
