package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

var _ models.SaleStore = (*SaleRepository)(nil)

const (
	saleColumns = `id, product, customer, sale_date, quantity, price, total, created_at`
	insertSale  = `INSERT INTO sales (` + saleColumns + `)
				   VALUES (:id, :product, :customer, :sale_date, :quantity, :price, :total, :created_at)`
)

type SaleRepository struct {
	db *sqlx.DB
}

func NewSaleRepository(db *sqlx.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error) {
	var (
		where []string
		args  []any
	)
	eq := func(column string, value any) {
		where = append(where, column+` = ?`)
		args = append(args, value)
	}

	if filter.Product != "" {
		eq("product", filter.Product)
	}
	if filter.User != "" {
		eq("customer", filter.User)
	}
	if filter.Date != "" {
		eq("sale_date", filter.Date)
	}
	if filter.Quantity != nil {
		eq("quantity", *filter.Quantity)
	}
	if filter.Price != nil {
		eq("price", *filter.Price)
	}
	if filter.Total != nil {
		eq("total", *filter.Total)
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY created_at, id`

	sales := []models.Sale{}
	if err := r.db.SelectContext(ctx, &sales, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, nil
}

func (r *SaleRepository) Create(ctx context.Context, sale models.Sale) error {
	if _, err := r.db.NamedExecContext(ctx, insertSale, sale); err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// CreateMany inserts all sales in one transaction.
func (r *SaleRepository) CreateMany(ctx context.Context, sales []models.Sale) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx, insertSale)
	if err != nil {
		return fmt.Errorf("failed to prepare sale insert: %w", err)
	}
	defer stmt.Close()

	for i, sale := range sales {
		if _, err := stmt.ExecContext(ctx, sale); err != nil {
			return fmt.Errorf("failed to create sale %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sales: %w", err)
	}

	return nil
}

func (r *SaleRepository) TotalsForDate(ctx context.Context, date string) (models.DailyTotals, error) {
	query := r.db.Rebind(`
		SELECT COUNT(*) AS sales_count,
		       COALESCE(SUM(quantity), 0) AS quantity,
		       COALESCE(SUM(total), 0) AS revenue
		FROM sales
		WHERE sale_date = ?`)

	var totals models.DailyTotals
	if err := r.db.GetContext(ctx, &totals, query, date); err != nil {
		return models.DailyTotals{}, fmt.Errorf("failed to aggregate sales for %s: %w", date, err)
	}

	return totals, nil
}

// Rankings are ordered by the aggregate, ties go to the client whose first
// sale was recorded earliest.

func (r *SaleRepository) TopBuyers(ctx context.Context, limit int) ([]models.BuyerRank, error) {
	query := r.db.Rebind(`
		SELECT customer AS name, SUM(quantity) AS total_quantity
		FROM sales
		GROUP BY customer
		ORDER BY total_quantity DESC, MIN(created_at), customer
		LIMIT ?`)

	ranks := []models.BuyerRank{}
	if err := r.db.SelectContext(ctx, &ranks, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank buyers: %w", err)
	}
	return ranks, nil
}

func (r *SaleRepository) TopSpenders(ctx context.Context, limit int) ([]models.SpenderRank, error) {
	query := r.db.Rebind(`
		SELECT customer AS name, SUM(total) AS total_spent
		FROM sales
		GROUP BY customer
		ORDER BY total_spent DESC, MIN(created_at), customer
		LIMIT ?`)

	ranks := []models.SpenderRank{}
	if err := r.db.SelectContext(ctx, &ranks, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank spenders: %w", err)
	}
	return ranks, nil
}

func (r *SaleRepository) TopDaySprees(ctx context.Context, limit int) ([]models.DaySpreeRank, error) {
	query := r.db.Rebind(`
		SELECT customer AS name, sale_date, SUM(total) AS total_spent
		FROM sales
		GROUP BY customer, sale_date
		ORDER BY total_spent DESC, MIN(created_at), customer, sale_date
		LIMIT ?`)

	ranks := []models.DaySpreeRank{}
	if err := r.db.SelectContext(ctx, &ranks, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank single-day spends: %w", err)
	}
	return ranks, nil
}
