package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/service"
)

// mockUserService is a mock of UserService.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserService) Register(ctx context.Context, in models.RegisterInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *mockUserService) Confirm(ctx context.Context, token string) (models.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.LoginResult), args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockUserService) Session(ctx context.Context, sessionID string) (models.Session, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockUserService) Update(ctx context.Context, in models.UpdateUserInput) (models.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.User), args.Error(1)
}

// mockSaleService is a mock of SaleService.
type mockSaleService struct {
	mock.Mock
}

func (m *mockSaleService) List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error) {
	args := m.Called(ctx, filter)
	sales, _ := args.Get(0).([]models.Sale)
	return sales, args.Error(1)
}

func (m *mockSaleService) DailyStats(ctx context.Context) (models.DailyStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DailyStats), args.Error(1)
}

func (m *mockSaleService) ClientStats(ctx context.Context) (models.ClientStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.ClientStats), args.Error(1)
}

func (m *mockSaleService) Create(ctx context.Context, in models.SaleInput) (models.Sale, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Sale), args.Error(1)
}

func (m *mockSaleService) CreateBulk(ctx context.Context, items []models.SaleInput) ([]models.Sale, error) {
	args := m.Called(ctx, items)
	sales, _ := args.Get(0).([]models.Sale)
	return sales, args.Error(1)
}
