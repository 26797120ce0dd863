package domain

import "time"

type HourlySale struct {
	Hour   string  `json:"hour"`
	Amount float64 `json:"amount"`
}

type TopProduct struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

type LowStockItem struct {
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// ReportSummary mirrors the four metric cards of the admin dashboard. Deltas
// are percentages against the previous day.
type ReportSummary struct {
	DaySales          float64 `json:"day_sales"`
	DaySalesDelta     int     `json:"day_sales_delta"`
	Transactions      int     `json:"transactions"`
	TransactionsDelta int     `json:"transactions_delta"`
	ItemsSold         int     `json:"items_sold"`
	ItemsSoldDelta    int     `json:"items_sold_delta"`
	LowStockCount     int     `json:"low_stock_count"`
}

type SalesReport struct {
	Period      string         `json:"period"`
	Summary     ReportSummary  `json:"summary"`
	Hourly      []HourlySale   `json:"hourly"`
	TopProducts []TopProduct   `json:"top_products"`
	LowStock    []LowStockItem `json:"low_stock"`
	GeneratedAt time.Time      `json:"generated_at"`
}
