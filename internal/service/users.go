package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

// UsersConfig holds the settings the user service needs.
type UsersConfig struct {
	Secret     string
	SessionTTL time.Duration
	BaseURL    string
}

// Users implements registration, authentication and profile management.
type Users struct {
	users    models.UserStore
	sessions models.SessionStore
	mailer   models.Mailer
	logger   *logger.Logger
	cfg      UsersConfig
	now      func() time.Time
}

func NewUsers(
	users models.UserStore,
	sessions models.SessionStore,
	mailer models.Mailer,
	logger *logger.Logger,
	cfg UsersConfig,
) *Users {
	return &Users{
		users:    users,
		sessions: sessions,
		mailer:   mailer,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token   string
	Session models.Session
}

func (s *Users) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		s.logger.Error("Users service: failed to list users", "error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Register creates an unconfirmed user and returns a bearer token for it. A
// confirmation link is mailed to the user; a mail failure does not fail the
// registration.
func (s *Users) Register(ctx context.Context, in models.RegisterInput) (string, error) {
	s.logger.Debug("Users service: registering user", "email", in.Email)

	if errs := models.ValidateRegistration(in); len(errs) > 0 {
		return "", apperr.Validation("Invalid registration data", errs...)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	user := models.User{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Password:    hash,
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			s.logger.Info("Users service: email already registered", "email", user.Email)
			return "", apperr.Conflict("Email already registered")
		}
		s.logger.Error("Users service: failed to create user",
			"email", user.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := utils.GenerateToken(user.ID, user.Email, s.cfg.Secret, utils.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.mailer.SendConfirmation(ctx, user.Email, user.Name, s.confirmationLink(token)); err != nil {
		s.logger.Warn("Users service: failed to send confirmation mail",
			"email", user.Email,
			"error", err.Error())
	}

	s.logger.Info("Users service: user registered", "email", user.Email, "user_id", user.ID)

	return token, nil
}

func (s *Users) confirmationLink(token string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/users/confirm?token=" + url.QueryEscape(token)
}

// Confirm marks the user referenced by token as confirmed.
func (s *Users) Confirm(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, apperr.Validation("Token is required")
	}

	claims, err := utils.VerifyToken(token, s.cfg.Secret)
	if err != nil {
		return models.User{}, apperr.Validation("Invalid token").Wrap(err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	user.IsConfirmed = true
	user.UpdatedAt = s.now().UTC()

	err = s.users.Update(ctx, user)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		s.logger.Error("Users service: failed to confirm user",
			"user_id", user.ID,
			"error", err.Error())
		return models.User{}, fmt.Errorf("failed to confirm user: %w", err)
	}

	s.logger.Info("Users service: user confirmed", "user_id", user.ID)

	return user, nil
}

// Login checks the credentials, issues a bearer token and opens a session.
func (s *Users) Login(ctx context.Context, email, password string) (LoginResult, error) {
	s.logger.Debug("Users service: login attempt", "email", email)

	if email == "" || password == "" {
		return LoginResult{}, apperr.Validation("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return LoginResult{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := utils.CheckPassword(password, user.Password)
	if err != nil {
		s.logger.Error("Users service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return LoginResult{}, err
	}
	if !ok {
		s.logger.Info("Users service: invalid password", "user_id", user.ID)
		return LoginResult{}, apperr.Unauthorized("Invalid password")
	}

	token, _, err := utils.GenerateToken(user.ID, user.Email, s.cfg.Secret, utils.TokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	now := s.now().UTC()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("Users service: failed to create session",
			"user_id", user.ID,
			"error", err.Error())
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Users service: login successful", "user_id", user.ID)

	return LoginResult{Token: token, Session: session}, nil
}

// Logout destroys the session. An empty or unknown session id is not an error.
func (s *Users) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Users service: failed to destroy session", "error", err.Error())
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// Session returns the active session with the given id.
func (s *Users) Session(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, apperr.Unauthorized("No active session")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Session{}, apperr.Unauthorized("No active session")
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("Users service: failed to remove expired session", "error", err.Error())
		}
		return models.Session{}, apperr.Unauthorized("No active session")
	}

	return session, nil
}

// Delete removes the user with the given email together with its sessions.
func (s *Users) Delete(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	err = s.users.DeleteByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		s.logger.Error("Users service: failed to delete user",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.sessions.DeleteByUser(ctx, user.ID); err != nil {
		s.logger.Warn("Users service: failed to remove sessions of deleted user",
			"user_id", user.ID,
			"error", err.Error())
	}

	s.logger.Info("Users service: user deleted", "user_id", user.ID)

	return nil
}

// Update changes name, email and/or password after checking the current
// password.
func (s *Users) Update(ctx context.Context, in models.UpdateUserInput) (models.User, error) {
	if errs := models.ValidateUserUpdate(in); len(errs) > 0 {
		return models.User{}, apperr.Validation("Invalid update data", errs...)
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if errors.Is(err, models.ErrNotFound) {
		return models.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := utils.CheckPassword(in.Password, user.Password)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, apperr.Unauthorized("Invalid password")
	}

	oldEmail := user.Email
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if newEmail := strings.TrimSpace(in.NewEmail); newEmail != "" {
		user.Email = newEmail
	}
	if in.NewPassword != "" {
		hash, err := utils.HashPassword(in.NewPassword)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}
	user.UpdatedAt = s.now().UTC()

	err = s.users.Update(ctx, user)
	switch {
	case errors.Is(err, models.ErrDuplicate):
		return models.User{}, apperr.Conflict("Email already registered")
	case errors.Is(err, models.ErrNotFound):
		return models.User{}, apperr.NotFound("User not found")
	case err != nil:
		s.logger.Error("Users service: failed to update user",
			"user_id", user.ID,
			"error", err.Error())
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	if user.Email != oldEmail {
		if err := s.sessions.UpdateEmail(ctx, user.ID, user.Email); err != nil {
			s.logger.Warn("Users service: failed to update session email",
				"user_id", user.ID,
				"error", err.Error())
		}
	}

	s.logger.Info("Users service: user updated", "user_id", user.ID)

	return user, nil
}
