package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao"
)

var (
	ErrInvalidInput = dao.ErrInvalidInput
	ErrNotFound     = dao.ErrNotFound
	ErrUnknownItem  = dao.ErrUnknownItem
)

type CatalogDAO interface {
	FindVenues(ctx context.Context) ([]dao.Venue, error)
	FindVenue(ctx context.Context, venueID string) (dao.Venue, error)
	FindItems(ctx context.Context, venueID string) ([]dao.Item, error)
	FindItem(ctx context.Context, venueID, itemID string) (dao.Item, error)
	ReplaceCatalog(ctx context.Context, venue dao.Venue, items []dao.Item) error
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.dao.FindVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVenues -> %w", err)
	}

	venues := make([]domain.Venue, len(found))
	for i, v := range found {
		venues[i] = venueDaoToDomain(v)
	}

	return venues, nil
}

func (r *CatalogRepository) GetVenue(ctx context.Context, venueID string) (domain.Venue, error) {
	found, err := r.dao.FindVenue(ctx, venueID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindVenue -> %w", err)
	}

	return venueDaoToDomain(found), nil
}

// GetItems returns the venue's items in insertion order.
func (r *CatalogRepository) GetItems(ctx context.Context, venueID string) ([]domain.Item, error) {
	if _, err := r.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}

	found, err := r.dao.FindItems(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItems -> %w", err)
	}

	items := make([]domain.Item, len(found))
	for i, item := range found {
		items[i] = itemDaoToDomain(item)
	}

	return items, nil
}

func (r *CatalogRepository) GetItem(ctx context.Context, venueID, itemID string) (domain.Item, error) {
	found, err := r.dao.FindItem(ctx, venueID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindItem -> %w", err)
	}

	return itemDaoToDomain(found), nil
}

// Seed replaces the venue's catalog all-or-nothing. Items without an id get one derived from their name.
func (r *CatalogRepository) Seed(ctx context.Context, venue domain.Venue, items []domain.Item) error {
	if err := venue.Validate(); err != nil {
		return fmt.Errorf("%w: venue: %v", ErrInvalidInput, err)
	}

	seen := make(map[string]struct{}, len(items))
	rows := make([]dao.Item, len(items))
	for i := range items {
		item := items[i]
		item.VenueID = venue.ID
		if item.ID == "" {
			item.ID = domain.Slug(item.Name)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: item %d (%s): %v", ErrInvalidInput, i, item.Name, err)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: item %d: duplicate id %q", ErrInvalidInput, i, item.ID)
		}
		seen[item.ID] = struct{}{}

		rows[i] = itemDomainToDao(item, i)
	}

	err := r.dao.ReplaceCatalog(ctx, dao.Venue{
		ID:       venue.ID,
		Name:     venue.Name,
		Subtitle: venue.Subtitle,
	}, rows)
	if err != nil {
		return fmt.Errorf("r.dao.ReplaceCatalog -> %w", err)
	}

	return nil
}

func venueDaoToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:       v.ID,
		Name:     v.Name,
		Subtitle: v.Subtitle,
	}
}

func itemDaoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:        i.ID,
		VenueID:   i.VenueID,
		Name:      i.Name,
		Category:  domain.Category(i.Category),
		Stock:     i.Stock,
		MaxStock:  i.MaxStock,
		Available: i.Available,
		Price:     i.Price,
	}
}

func itemDomainToDao(i domain.Item, position int) dao.Item {
	return dao.Item{
		VenueID:   i.VenueID,
		ID:        i.ID,
		Position:  position,
		Name:      i.Name,
		Category:  string(i.Category),
		Stock:     i.Stock,
		MaxStock:  i.MaxStock,
		Available: i.Available,
		Price:     i.Price,
	}
}
