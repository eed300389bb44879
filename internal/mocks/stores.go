// Package mocks holds testify mocks of the store and mailer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

// UserStore is a mock of models.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) Update(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// SaleStore is a mock of models.SaleStore.
type SaleStore struct {
	mock.Mock
}

func (m *SaleStore) List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error) {
	args := m.Called(ctx, filter)
	sales, _ := args.Get(0).([]models.Sale)
	return sales, args.Error(1)
}

func (m *SaleStore) Create(ctx context.Context, sale models.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *SaleStore) CreateMany(ctx context.Context, sales []models.Sale) error {
	return m.Called(ctx, sales).Error(0)
}

func (m *SaleStore) TotalsForDate(ctx context.Context, date string) (models.DailyTotals, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(models.DailyTotals), args.Error(1)
}

func (m *SaleStore) TopBuyers(ctx context.Context, limit int) ([]models.BuyerRank, error) {
	args := m.Called(ctx, limit)
	ranks, _ := args.Get(0).([]models.BuyerRank)
	return ranks, args.Error(1)
}

func (m *SaleStore) TopSpenders(ctx context.Context, limit int) ([]models.SpenderRank, error) {
	args := m.Called(ctx, limit)
	ranks, _ := args.Get(0).([]models.SpenderRank)
	return ranks, args.Error(1)
}

func (m *SaleStore) TopDaySprees(ctx context.Context, limit int) ([]models.DaySpreeRank, error) {
	args := m.Called(ctx, limit)
	ranks, _ := args.Get(0).([]models.DaySpreeRank)
	return ranks, args.Error(1)
}

// SessionStore is a mock of models.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *SessionStore) UpdateEmail(ctx context.Context, userID, email string) error {
	return m.Called(ctx, userID, email).Error(0)
}

// Mailer is a mock of models.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) SendConfirmation(ctx context.Context, to, name, link string) error {
	return m.Called(ctx, to, name, link).Error(0)
}
