package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns purchases. Only name and email are exposed
// through the API; the password hash never leaves the service layer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Rol          string    `json:"rol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is a stored, revocable token backing the JWT refresh flow.
type RefreshToken struct {
	ID        uuid.UUID
	UsuarioID uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}
