package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

var _ models.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session models.Session) error {
	query := `INSERT INTO sessions (id, user_id, email, expires_at, created_at)
			  VALUES (:id, :user_id, :email, :expires_at, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (models.Session, error) {
	var session models.Session
	query := r.db.Rebind(`SELECT id, user_id, email, expires_at, created_at FROM sessions WHERE id = ?`)

	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, models.ErrNotFound
		}
		return models.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM sessions WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM sessions WHERE user_id = ?`), userID); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

// UpdateEmail rewrites the email cached in every session of the user.
func (r *SessionRepository) UpdateEmail(ctx context.Context, userID, email string) error {
	query := r.db.Rebind(`UPDATE sessions SET email = ? WHERE user_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, email, userID); err != nil {
		return fmt.Errorf("failed to update session email: %w", err)
	}
	return nil
}
