package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Venue struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null"`
	Subtitle  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Item struct {
	VenueID   string          `gorm:"primaryKey;size:64"`
	ID        string          `gorm:"primaryKey;size:64"`
	Venue     Venue           `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"not null"`
	Category  string          `gorm:"not null;size:16"`
	Stock     int             `gorm:"not null;check:chk_items_stock_bounds,stock >= 0 AND stock <= max_stock"`
	MaxStock  int             `gorm:"not null;check:chk_items_max_stock,max_stock > 0"`
	Available bool            `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) FindVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).Order("id").Find(&venues)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return venues, nil
}

func (d *CatalogDAO) FindVenue(ctx context.Context, venueID string) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).First(&venue, "id = ?", venueID)
	if result.Error != nil {
		return Venue{}, classify(result.Error)
	}

	return venue, nil
}

func (d *CatalogDAO) FindItems(ctx context.Context, venueID string) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("position").Find(&items)
	if result.Error != nil {
		return nil, classify(result.Error)
	}

	return items, nil
}

func (d *CatalogDAO) FindItem(ctx context.Context, venueID, itemID string) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, "venue_id = ? AND id = ?", venueID, itemID)
	if result.Error != nil {
		return Item{}, classify(result.Error)
	}

	return item, nil
}

// ReplaceCatalog upserts the venue and swaps its items in a single transaction.
func (d *CatalogDAO) ReplaceCatalog(ctx context.Context, venue Venue, items []Item) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "subtitle", "updated_at"}),
		}
		if err := tx.Clauses(upsert).Create(&venue).Error; err != nil {
			return err
		}

		if err := tx.Where("venue_id = ?", venue.ID).Delete(&Item{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		return tx.Omit(clause.Associations).Create(&items).Error
	})

	return classify(err)
}
