package service

import (
	"context"
	"testing"
	"time"

	"farmacia-api/internal/domain"
	"farmacia-api/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Mock repositories for testing
type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, exists := m.users[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type mockRefreshTokenRepository struct {
	tokens map[string]*domain.RefreshToken
}

func newMockRefreshTokenRepository() *mockRefreshTokenRepository {
	return &mockRefreshTokenRepository{tokens: make(map[string]*domain.RefreshToken)}
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if refreshToken.Revoked {
		return nil, repository.ErrRefreshTokenRevoked
	}
	return refreshToken, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	refreshToken, exists := m.tokens[token]
	if !exists {
		return repository.ErrRefreshTokenNotFound
	}
	refreshToken.Revoked = true
	return nil
}

func newTestUserService() (UserService, *mockUserRepository, *mockRefreshTokenRepository) {
	users := newMockUserRepository()
	tokens := newMockRefreshTokenRepository()
	return NewUserService(users, tokens, "test-secret"), users, tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users, _ := newTestUserService()

	user, err := svc.Register(context.Background(), "Ana López", "ana@mfarma.com", "secreto123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.PasswordHash == "secreto123" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.Rol != "cliente" {
		t.Errorf("Rol = %q, want cliente", user.Rol)
	}
	if _, ok := users.users["ana@mfarma.com"]; !ok {
		t.Error("user was not persisted")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService()

	if _, err := svc.Register(context.Background(), "Ana", "ana@mfarma.com", "secreto123"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Otra Ana", "ana@mfarma.com", "otra"); err != repository.ErrUserAlreadyExists {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, _, tokens := newTestUserService()

	if _, err := svc.Register(context.Background(), "Ana", "ana@mfarma.com", "secreto123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	access, refresh, user, err := svc.Login(context.Background(), "ana@mfarma.com", "secreto123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens")
	}
	if user.Email != "ana@mfarma.com" {
		t.Errorf("Email = %q", user.Email)
	}
	if _, ok := tokens.tokens[refresh]; !ok {
		t.Error("refresh token was not persisted")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newTestUserService()

	if _, err := svc.Register(context.Background(), "Ana", "ana@mfarma.com", "secreto123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, _, err := svc.Login(context.Background(), "ana@mfarma.com", "incorrecta"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "nadie@mfarma.com", "x"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRefreshTokenFlow(t *testing.T) {
	svc, _, _ := newTestUserService()

	if _, err := svc.Register(context.Background(), "Ana", "ana@mfarma.com", "secreto123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, refresh, _, err := svc.Login(context.Background(), "ana@mfarma.com", "secreto123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	access, err := svc.RefreshToken(context.Background(), refresh)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if access == "" {
		t.Error("expected a new access token")
	}

	// After logout the refresh token is revoked and unusable.
	if err := svc.Logout(context.Background(), refresh); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.RefreshToken(context.Background(), refresh); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, users, tokens := newTestUserService()

	user := &domain.User{ID: uuid.New(), Email: "ana@mfarma.com", PasswordHash: "x", Rol: "cliente"}
	users.users[user.Email] = user
	tokens.tokens["viejo"] = &domain.RefreshToken{
		ID:        uuid.New(),
		UsuarioID: user.ID,
		Token:     "viejo",
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}

	if _, err := svc.RefreshToken(context.Background(), "viejo"); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestLogoutUnknownTokenIsIdempotent(t *testing.T) {
	svc, _, _ := newTestUserService()

	if err := svc.Logout(context.Background(), "inexistente"); err != nil {
		t.Errorf("logout of an unknown token must succeed, got %v", err)
	}
}
