package models

import (
	"context"
	"time"
)

// User is an account of the sales desk. Email is the natural key used by the
// API; ID is the durable record id carried in tokens.
type User struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Password    string    `db:"password_hash" json:"-"`
	DateOfBirth string    `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	IsConfirmed bool      `db:"is_confirmed" json:"isConfirmed"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// UserFilter holds optional case-insensitive substring filters.
type UserFilter struct {
	Name  string
	Email string
}

// RegisterInput is the payload of a registration.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

// UpdateUserInput is the payload of a profile update. Password must match the
// current one; empty optional fields are left unchanged.
type UpdateUserInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	NewEmail    string `json:"newEmail"`
	NewPassword string `json:"newPassword"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID string
	Email  string
}

// UserStore defines persistence operations for users.
type UserStore interface {
	List(ctx context.Context, filter UserFilter) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
	DeleteByEmail(ctx context.Context, email string) error
}
