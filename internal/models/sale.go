package models

import (
	"context"
	"time"
)

// Sale is a single sales transaction. User is free text, not a reference to a
// User record, and Date is a YYYY-MM-DD string.
type Sale struct {
	ID        string    `db:"id" json:"id"`
	Product   string    `db:"product" json:"product"`
	User      string    `db:"customer" json:"user"`
	Date      string    `db:"sale_date" json:"date"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	Price     float64   `db:"price" json:"price"`
	Total     float64   `db:"total" json:"total"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// SaleInput is a sale as submitted by a client. Total is accepted but ignored;
// the stored total is always Quantity*Price.
type SaleInput struct {
	Product  string  `json:"product"`
	User     string  `json:"user"`
	Date     string  `json:"date"`
	Quantity *Number `json:"quantity"`
	Price    *Number `json:"price"`
	Total    *Number `json:"total"`
}

// SaleFilter holds optional equality filters. Nil numbers are not filtered.
type SaleFilter struct {
	Product  string
	User     string
	Date     string
	Quantity *float64
	Price    *float64
	Total    *float64
}

// DailyTotals is the raw aggregate of sales for one day.
type DailyTotals struct {
	Count    int     `db:"sales_count"`
	Quantity float64 `db:"quantity"`
	Revenue  float64 `db:"revenue"`
}

// DailyStats is the formatted statistics of the current day.
type DailyStats struct {
	TotalSales        int    `json:"totalSales"`
	QuantitySoldToday string `json:"quantitySoldToday"`
	TotalRevenueToday string `json:"totalRevenueToday"`
}

type BuyerRank struct {
	Name          string  `db:"name" json:"name"`
	TotalQuantity float64 `db:"total_quantity" json:"totalQuantity"`
}

type SpenderRank struct {
	Name       string  `db:"name" json:"name"`
	TotalSpent float64 `db:"total_spent" json:"totalSpent"`
}

type DaySpreeRank struct {
	Name       string  `db:"name" json:"name"`
	Date       string  `db:"sale_date" json:"date"`
	TotalSpent float64 `db:"total_spent" json:"totalSpent"`
}

// ClientStats holds the client rankings, best first.
type ClientStats struct {
	BiggestBuyer           []BuyerRank    `json:"biggestBuyer"`
	BiggestSpenderMedium   []SpenderRank  `json:"biggestSpenderMedium"`
	BiggestSpenderDaySpree []DaySpreeRank `json:"biggestSpenderDaySpree"`
}

// SaleStore defines persistence and aggregation operations for sales.
type SaleStore interface {
	List(ctx context.Context, filter SaleFilter) ([]Sale, error)
	Create(ctx context.Context, sale Sale) error
	CreateMany(ctx context.Context, sales []Sale) error
	TotalsForDate(ctx context.Context, date string) (DailyTotals, error)
	TopBuyers(ctx context.Context, limit int) ([]BuyerRank, error)
	TopSpenders(ctx context.Context, limit int) ([]SpenderRank, error)
	TopDaySprees(ctx context.Context, limit int) ([]DaySpreeRank, error)
}
