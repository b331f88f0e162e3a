package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type StockTier string

const (
	StockTierHigh   StockTier = "HIGH"
	StockTierMedium StockTier = "MEDIUM"
	StockTierLow    StockTier = "LOW"
)

type StockLevel struct {
	Item         Item      `json:"item"`
	StockPercent float64   `json:"stock_percent"`
	Tier         StockTier `json:"tier"`
}

type TopSeller struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// AverageRating has a nil Score when the item has not been rated yet.
type AverageRating struct {
	ItemID string   `json:"item_id"`
	Count  int      `json:"count"`
	Score  *float64 `json:"score"`
}

type RatingsOverview struct {
	Count int      `json:"count"`
	Score *float64 `json:"score"`
}

type TrendPoint struct {
	Date      string  `json:"date"`
	MeanScore float64 `json:"mean_score"`
	Count     int     `json:"count"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RevenueShare struct {
	ItemID  string          `json:"item_id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
	Share   float64         `json:"share"`
}

// Round1 rounds half away from zero to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
