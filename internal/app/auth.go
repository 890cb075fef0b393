package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"templehub/pkg/auth"
	"templehub/pkg/domain"
)

const ownerUsername = "owner"

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Login validates credentials and issues a signed session token.
func (a *App) Login(username, password string) (domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, "", ErrUsernameAndPasswordRequired
	}
	user, ok, err := a.store.GetUserByUsername(username)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("fetch user: %w", err)
	}
	if !ok {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (a *App) issueToken(user domain.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
		Role: string(user.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// UserFromToken resolves a user from a session token. Expired or
// malformed tokens report false.
func (a *App) UserFromToken(tokenStr string) (domain.User, bool) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, false
	}
	user, ok, err := a.store.GetUserByID(claims.Subject)
	if err != nil || !ok {
		return domain.User{}, false
	}
	return user, true
}

// EnsureOwner seeds the owner account when it does not exist yet.
func (a *App) EnsureOwner(password string) error {
	_, ok, err := a.store.GetUserByUsername(ownerUsername)
	if err != nil {
		return fmt.Errorf("fetch owner: %w", err)
	}
	if ok {
		return nil
	}
	if err := auth.ValidatePassword(password); err != nil {
		return fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}
	owner := domain.User{
		ID:           uuid.NewString(),
		Username:     ownerUsername,
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveUser(owner); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	return nil
}

// CreateUser registers a managed account. Only admin and user roles can
// be created; the owner account exists exactly once.
func (a *App) CreateUser(username, password string, role domain.UserRole) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrUsernameAndPasswordRequired
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.User{}, ErrInvalidRole
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}
	if _, exists, err := a.store.GetUserByUsername(username); err != nil {
		return domain.User{}, fmt.Errorf("check username: %w", err)
	} else if exists {
		return domain.User{}, ErrUsernameAlreadyExists
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveUser(user); err != nil {
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// ListUsers returns all managed accounts.
func (a *App) ListUsers() ([]domain.User, error) {
	return a.store.ListUsers()
}

// DeleteUser removes a managed account. The owner cannot be deleted.
func (a *App) DeleteUser(id string) error {
	user, ok, err := a.store.GetUserByID(id)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	if !ok {
		return ErrRecordNotFound
	}
	if user.Role == domain.RoleOwner {
		return ErrOwnerImmutable
	}
	deleted, err := a.store.DeleteUser(id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}
