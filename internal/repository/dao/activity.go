package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Activity rows reference items by id only, so re-seeding a catalog never orphans history.

type SaleEvent struct {
	Seq       int64           `gorm:"primaryKey;autoIncrement"`
	ID        string          `gorm:"uniqueIndex;size:36;not null"`
	VenueID   string          `gorm:"index:idx_sale_events_venue_date,priority:1;size:64;not null"`
	Venue     Venue           `gorm:"foreignKey:VenueID"`
	ItemID    string          `gorm:"size:64;not null"`
	Date      time.Time       `gorm:"type:date;index:idx_sale_events_venue_date,priority:2;not null"`
	Quantity  int             `gorm:"not null;check:chk_sale_events_quantity,quantity > 0"`
	Revenue   decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_sale_events_revenue,revenue > 0"`
	CreatedAt time.Time       `gorm:"not null"`
}

type Rating struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"uniqueIndex;size:36;not null"`
	VenueID   string    `gorm:"index;size:64;not null"`
	Venue     Venue     `gorm:"foreignKey:VenueID"`
	ItemID    string    `gorm:"size:64;not null"`
	Score     int       `gorm:"not null;check:chk_ratings_score,score BETWEEN 1 AND 5"`
	Comment   string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"not null"`
}

type Suggestion struct {
	Seq           int64                        `gorm:"primaryKey;autoIncrement"`
	ID            string                       `gorm:"uniqueIndex;size:36;not null"`
	VenueID       string                       `gorm:"index;size:64;not null"`
	Venue         Venue                        `gorm:"foreignKey:VenueID"`
	Name          string                       `gorm:"size:80;not null"`
	Category      string                       `gorm:"size:16;not null"`
	Description   string                       `gorm:"size:1000;not null"`
	ExpectedPrice decimal.NullDecimal          `gorm:"type:numeric(12,2)"`
	DietaryTags   datatypes.JSONType[[]string] `gorm:"not null"`
	CreatedAt     time.Time                    `gorm:"not null"`
}

// SaleQuery narrows FindSales. Zero values match everything.
type SaleQuery struct {
	ItemID string
	From   *time.Time
	To     *time.Time
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) InsertSale(ctx context.Context, sale SaleEvent) (SaleEvent, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&sale)
	if result.Error != nil {
		return SaleEvent{}, classify(result.Error)
	}

	return sale, nil
}

func (d *ActivityDAO) InsertRating(ctx context.Context, rating Rating) (Rating, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&rating)
	if result.Error != nil {
		return Rating{}, classify(result.Error)
	}

	return rating, nil
}

func (d *ActivityDAO) InsertSuggestion(ctx context.Context, suggestion Suggestion) (Suggestion, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&suggestion)
	if result.Error != nil {
		return Suggestion{}, classify(result.Error)
	}

	return suggestion, nil
}

func (d *ActivityDAO) FindSales(ctx context.Context, venueID string, q SaleQuery) ([]SaleEvent, error) {
	var sales []SaleEvent

	tx := d.db.WithContext(ctx).Where("venue_id = ?", venueID)
	if q.ItemID != "" {
		tx = tx.Where("item_id = ?", q.ItemID)
	}
	if q.From != nil {
		tx = tx.Where("date >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("date <= ?", *q.To)
	}

	result := tx.Order("date").Order("seq").Find(&sales)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return sales, nil
}

func (d *ActivityDAO) FindRatings(ctx context.Context, venueID, itemID string) ([]Rating, error) {
	var ratings []Rating

	tx := d.db.WithContext(ctx).Where("venue_id = ?", venueID)
	if itemID != "" {
		tx = tx.Where("item_id = ?", itemID)
	}

	result := tx.Order("seq").Find(&ratings)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return ratings, nil
}

func (d *ActivityDAO) FindRecentRatings(ctx context.Context, venueID string, limit int) ([]Rating, error) {
	var ratings []Rating

	result := d.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Order("seq DESC").
		Limit(limit).
		Find(&ratings)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return ratings, nil
}

func (d *ActivityDAO) FindSuggestions(ctx context.Context, venueID string) ([]Suggestion, error) {
	var suggestions []Suggestion

	result := d.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&suggestions)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return suggestions, nil
}
