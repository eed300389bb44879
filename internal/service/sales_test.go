package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/mocks"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/testutil"
)

func ptr(v float64) *models.Number { return models.NumberOf(v) }

func newSalesFixture(t *testing.T) (*Sales, *mocks.SaleStore) {
	t.Helper()
	store := &mocks.SaleStore{}
	t.Cleanup(func() { store.AssertExpectations(t) })
	return NewSales(store, testutil.MakeNoopLogger()), store
}

func TestSales_Create_ComputesTotal(t *testing.T) {
	svc, store := newSalesFixture(t)
	now := time.Date(2025, 6, 28, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	store.On("Create", mock.Anything, mock.MatchedBy(func(s models.Sale) bool {
		return s.Total == 1000 && s.ID != "" && s.CreatedAt.Equal(now)
	})).Return(nil)

	sale, err := svc.Create(context.Background(), models.SaleInput{
		Product:  "TV",
		User:     "Alice",
		Date:     "2025-06-28",
		Quantity: ptr(2),
		Price:    ptr(500),
		Total:    ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "TV", sale.Product)
	assert.Equal(t, "Alice", sale.User)
	assert.InDelta(t, 1000.0, sale.Total, 1e-9)
}

func TestSales_Create_Errors(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newSalesFixture(t)

		_, err := svc.Create(context.Background(), models.SaleInput{Product: "TV"})
		appErr := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, "All fields are required", appErr.Message)
		assert.Len(t, appErr.Fields, 4)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		store.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), models.SaleInput{
			Product: "TV", User: "Alice", Date: "2025-06-28", Quantity: ptr(1), Price: ptr(1),
		})
		assert.ErrorContains(t, err, "failed to create sale")
	})
}

func TestSales_CreateBulk(t *testing.T) {
	svc, store := newSalesFixture(t)
	now := time.Date(2025, 6, 28, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	var stored []models.Sale
	store.On("CreateMany", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).([]models.Sale) }).
		Return(nil)

	items := []models.SaleInput{
		{Product: "TV", User: "Alice", Date: "2025-06-28", Quantity: ptr(2), Price: ptr(500)},
		{Product: "Radio", User: "Bob", Date: "2025-06-27", Quantity: ptr(3), Price: ptr(20)},
		{Product: "Lamp", User: "Carol", Date: "2025-06-26", Quantity: ptr(1), Price: ptr(15.5)},
	}
	sales, err := svc.CreateBulk(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, sales, stored)

	assert.InDelta(t, 1000.0, sales[0].Total, 1e-9)
	assert.InDelta(t, 60.0, sales[1].Total, 1e-9)
	assert.InDelta(t, 15.5, sales[2].Total, 1e-9)
	assert.True(t, sales[0].CreatedAt.Before(sales[1].CreatedAt))
	assert.True(t, sales[1].CreatedAt.Before(sales[2].CreatedAt))
	assert.NotEqual(t, sales[0].ID, sales[1].ID)
}

func TestSales_CreateBulk_RejectsWholeBatch(t *testing.T) {
	svc, _ := newSalesFixture(t)

	_, err := svc.CreateBulk(context.Background(), []models.SaleInput{
		{Product: "TV", User: "Alice", Date: "2025-06-28", Quantity: ptr(2), Price: ptr(500)},
		{Product: "Radio", User: "Bob", Date: "2025-06-28", Quantity: ptr(3)},
	})
	appErr := requireKind(t, err, apperr.KindValidation)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "bulk[1].price", appErr.Fields[0].Field)
}

func TestSales_CreateBulk_Empty(t *testing.T) {
	svc, _ := newSalesFixture(t)

	_, err := svc.CreateBulk(context.Background(), nil)
	requireKind(t, err, apperr.KindValidation)
}

func TestSales_DailyStats(t *testing.T) {
	t.Run("formats totals", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		// 23:30 in UTC-3 is already the next UTC day.
		local := time.Date(2025, 6, 27, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
		svc.now = func() time.Time { return local }
		store.On("TotalsForDate", mock.Anything, "2025-06-28").
			Return(models.DailyTotals{Count: 2, Quantity: 5, Revenue: 1060}, nil)

		stats, err := svc.DailyStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.DailyStats{
			TotalSales:        2,
			QuantitySoldToday: "5.00",
			TotalRevenueToday: "1060.00",
		}, stats)
	})

	t.Run("no sales today", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		store.On("TotalsForDate", mock.Anything, mock.Anything).Return(models.DailyTotals{}, nil)

		stats, err := svc.DailyStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalSales)
		assert.Equal(t, "0.00", stats.QuantitySoldToday)
		assert.Equal(t, "0.00", stats.TotalRevenueToday)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		store.On("TotalsForDate", mock.Anything, mock.Anything).Return(models.DailyTotals{}, errors.New("db down"))

		_, err := svc.DailyStats(context.Background())
		assert.Error(t, err)
	})
}

func TestSales_ClientStats(t *testing.T) {
	t.Run("rankings", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		buyers := []models.BuyerRank{{Name: "Alice", TotalQuantity: 3}}
		spenders := []models.SpenderRank{{Name: "Alice", TotalSpent: 1000}}
		sprees := []models.DaySpreeRank{{Name: "Alice", Date: "2025-06-28", TotalSpent: 1000}}
		store.On("TopBuyers", mock.Anything, RankingSize).Return(buyers, nil)
		store.On("TopSpenders", mock.Anything, RankingSize).Return(spenders, nil)
		store.On("TopDaySprees", mock.Anything, RankingSize).Return(sprees, nil)

		stats, err := svc.ClientStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, buyers, stats.BiggestBuyer)
		assert.Equal(t, spenders, stats.BiggestSpenderMedium)
		assert.Equal(t, sprees, stats.BiggestSpenderDaySpree)
	})

	t.Run("empty store gives empty lists", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		store.On("TopBuyers", mock.Anything, RankingSize).Return(nil, nil)
		store.On("TopSpenders", mock.Anything, RankingSize).Return(nil, nil)
		store.On("TopDaySprees", mock.Anything, RankingSize).Return(nil, nil)

		stats, err := svc.ClientStats(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, stats.BiggestBuyer)
		assert.NotNil(t, stats.BiggestSpenderMedium)
		assert.NotNil(t, stats.BiggestSpenderDaySpree)
		assert.Empty(t, stats.BiggestBuyer)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newSalesFixture(t)
		store.On("TopBuyers", mock.Anything, RankingSize).Return(nil, errors.New("db down"))

		_, err := svc.ClientStats(context.Background())
		assert.ErrorContains(t, err, "failed to rank buyers")
	})
}
