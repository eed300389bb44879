package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

// RankingSize is the number of clients in each ranking.
const RankingSize = 5

// Sales implements sales ingestion, listing and statistics.
type Sales struct {
	sales  models.SaleStore
	logger *logger.Logger
	now    func() time.Time
}

func NewSales(sales models.SaleStore, logger *logger.Logger) *Sales {
	return &Sales{
		sales:  sales,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Sales) List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error) {
	sales, err := s.sales.List(ctx, filter)
	if err != nil {
		s.logger.Error("Sales service: failed to list sales", "error", err.Error())
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

// DailyStats aggregates the sales dated on the current UTC day.
func (s *Sales) DailyStats(ctx context.Context) (models.DailyStats, error) {
	today := s.now().UTC().Format(models.DateLayout)

	totals, err := s.sales.TotalsForDate(ctx, today)
	if err != nil {
		s.logger.Error("Sales service: failed to compute daily stats",
			"date", today,
			"error", err.Error())
		return models.DailyStats{}, fmt.Errorf("failed to compute daily stats: %w", err)
	}

	return models.DailyStats{
		TotalSales:        totals.Count,
		QuantitySoldToday: strconv.FormatFloat(totals.Quantity, 'f', 2, 64),
		TotalRevenueToday: strconv.FormatFloat(totals.Revenue, 'f', 2, 64),
	}, nil
}

// ClientStats ranks clients by quantity bought, by total spent and by the
// most spent on a single day.
func (s *Sales) ClientStats(ctx context.Context) (models.ClientStats, error) {
	buyers, err := s.sales.TopBuyers(ctx, RankingSize)
	if err != nil {
		return models.ClientStats{}, fmt.Errorf("failed to rank buyers: %w", err)
	}

	spenders, err := s.sales.TopSpenders(ctx, RankingSize)
	if err != nil {
		return models.ClientStats{}, fmt.Errorf("failed to rank spenders: %w", err)
	}

	sprees, err := s.sales.TopDaySprees(ctx, RankingSize)
	if err != nil {
		return models.ClientStats{}, fmt.Errorf("failed to rank single-day spends: %w", err)
	}

	stats := models.ClientStats{
		BiggestBuyer:           buyers,
		BiggestSpenderMedium:   spenders,
		BiggestSpenderDaySpree: sprees,
	}
	if stats.BiggestBuyer == nil {
		stats.BiggestBuyer = []models.BuyerRank{}
	}
	if stats.BiggestSpenderMedium == nil {
		stats.BiggestSpenderMedium = []models.SpenderRank{}
	}
	if stats.BiggestSpenderDaySpree == nil {
		stats.BiggestSpenderDaySpree = []models.DaySpreeRank{}
	}

	return stats, nil
}

// Create validates and stores one sale. The stored total is quantity*price.
func (s *Sales) Create(ctx context.Context, in models.SaleInput) (models.Sale, error) {
	sale, errs := models.ValidateSale(in, "")
	if len(errs) > 0 {
		return models.Sale{}, apperr.Validation("All fields are required", errs...)
	}

	sale.ID = uuid.NewString()
	sale.CreatedAt = s.now().UTC()

	if err := s.sales.Create(ctx, sale); err != nil {
		s.logger.Error("Sales service: failed to create sale", "error", err.Error())
		return models.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	s.logger.Debug("Sales service: sale created", "sale_id", sale.ID, "user", sale.User)

	return sale, nil
}

// CreateBulk validates every item on its own and stores the batch atomically.
// One invalid item rejects the whole batch.
func (s *Sales) CreateBulk(ctx context.Context, items []models.SaleInput) ([]models.Sale, error) {
	sales, errs := models.ValidateBulk(items)
	if len(errs) > 0 {
		return nil, apperr.Validation("Every bulk item requires product, user, date, quantity and price", errs...)
	}

	// Microsecond steps keep the batch order in creation time.
	base := s.now().UTC()
	for i := range sales {
		sales[i].ID = uuid.NewString()
		sales[i].CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
	}

	if err := s.sales.CreateMany(ctx, sales); err != nil {
		s.logger.Error("Sales service: failed to create bulk sales",
			"count", len(sales),
			"error", err.Error())
		return nil, fmt.Errorf("failed to create bulk sales: %w", err)
	}

	s.logger.Info("Sales service: bulk sales created", "count", len(sales))

	return sales, nil
}
