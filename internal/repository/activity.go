package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao"
)

type ActivityDAO interface {
	InsertSale(ctx context.Context, sale dao.SaleEvent) (dao.SaleEvent, error)
	InsertRating(ctx context.Context, rating dao.Rating) (dao.Rating, error)
	InsertSuggestion(ctx context.Context, suggestion dao.Suggestion) (dao.Suggestion, error)
	FindSales(ctx context.Context, venueID string, q dao.SaleQuery) ([]dao.SaleEvent, error)
	FindRatings(ctx context.Context, venueID, itemID string) ([]dao.Rating, error)
	FindRecentRatings(ctx context.Context, venueID string, limit int) ([]dao.Rating, error)
	FindSuggestions(ctx context.Context, venueID string) ([]dao.Suggestion, error)
}

// ActivityRepository is the append-only log of sales, ratings and suggestions.
// Items are resolved through the catalog at append time only.
type ActivityRepository struct {
	dao     ActivityDAO
	catalog CatalogDAO
}

func NewActivityRepository(dao ActivityDAO, catalog CatalogDAO) *ActivityRepository {
	return &ActivityRepository{
		dao:     dao,
		catalog: catalog,
	}
}

func (r *ActivityRepository) AppendSale(ctx context.Context, sale domain.SaleEvent) (domain.SaleEvent, error) {
	if !sale.Date.IsZero() {
		sale.Date = domain.DayOf(sale.Date)
	}
	if err := sale.Validate(); err != nil {
		return domain.SaleEvent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := r.resolveItem(ctx, sale.VenueID, sale.ItemID); err != nil {
		return domain.SaleEvent{}, err
	}

	id, createdAt := stamp(sale.ID, sale.CreatedAt)
	created, err := r.dao.InsertSale(ctx, dao.SaleEvent{
		ID:        id,
		VenueID:   sale.VenueID,
		ItemID:    sale.ItemID,
		Date:      sale.Date,
		Quantity:  sale.Quantity,
		Revenue:   sale.Revenue,
		CreatedAt: createdAt,
	})
	if err != nil {
		return domain.SaleEvent{}, fmt.Errorf("r.dao.InsertSale -> %w", err)
	}

	return saleDaoToDomain(created), nil
}

func (r *ActivityRepository) AppendRating(ctx context.Context, rating domain.Rating) (domain.Rating, error) {
	if err := rating.Validate(); err != nil {
		return domain.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := r.resolveItem(ctx, rating.VenueID, rating.ItemID); err != nil {
		return domain.Rating{}, err
	}

	id, createdAt := stamp(rating.ID, rating.CreatedAt)
	created, err := r.dao.InsertRating(ctx, dao.Rating{
		ID:        id,
		VenueID:   rating.VenueID,
		ItemID:    rating.ItemID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: createdAt,
	})
	if err != nil {
		return domain.Rating{}, fmt.Errorf("r.dao.InsertRating -> %w", err)
	}

	return ratingDaoToDomain(created), nil
}

func (r *ActivityRepository) AppendSuggestion(ctx context.Context, suggestion domain.Suggestion) (domain.Suggestion, error) {
	suggestion.Normalize()
	if err := suggestion.Validate(); err != nil {
		return domain.Suggestion{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := r.requireVenue(ctx, suggestion.VenueID); err != nil {
		return domain.Suggestion{}, err
	}

	var price decimal.NullDecimal
	if suggestion.ExpectedPrice != nil {
		price = decimal.NewNullDecimal(*suggestion.ExpectedPrice)
	}

	id, createdAt := stamp(suggestion.ID, suggestion.CreatedAt)
	created, err := r.dao.InsertSuggestion(ctx, dao.Suggestion{
		ID:            id,
		VenueID:       suggestion.VenueID,
		Name:          suggestion.Name,
		Category:      string(suggestion.Category),
		Description:   suggestion.Description,
		ExpectedPrice: price,
		DietaryTags:   datatypes.NewJSONType(suggestion.DietaryTags),
		CreatedAt:     createdAt,
	})
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("r.dao.InsertSuggestion -> %w", err)
	}

	return suggestionDaoToDomain(created), nil
}

// QuerySales returns sales ordered by date, then append order.
func (r *ActivityRepository) QuerySales(ctx context.Context, venueID string, filter domain.SaleFilter) ([]domain.SaleEvent, error) {
	if err := r.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}

	q := dao.SaleQuery{ItemID: filter.ItemID}
	if filter.Window != nil {
		from, to := domain.DayOf(filter.Window.From), domain.DayOf(filter.Window.To)
		q.From, q.To = &from, &to
	}

	found, err := r.dao.FindSales(ctx, venueID, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSales -> %w", err)
	}

	sales := make([]domain.SaleEvent, len(found))
	for i, s := range found {
		sales[i] = saleDaoToDomain(s)
	}

	return sales, nil
}

// QueryRatings returns ratings in append order; an empty itemID selects the whole venue.
func (r *ActivityRepository) QueryRatings(ctx context.Context, venueID, itemID string) ([]domain.Rating, error) {
	if err := r.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}

	found, err := r.dao.FindRatings(ctx, venueID, itemID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRatings -> %w", err)
	}

	return ratingsDaoToDomain(found), nil
}

func (r *ActivityRepository) RecentRatings(ctx context.Context, venueID string, limit int) ([]domain.Rating, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	if err := r.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}

	found, err := r.dao.FindRecentRatings(ctx, venueID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentRatings -> %w", err)
	}

	return ratingsDaoToDomain(found), nil
}

// QuerySuggestions returns the venue's suggestions most recent first.
func (r *ActivityRepository) QuerySuggestions(ctx context.Context, venueID string) ([]domain.Suggestion, error) {
	if err := r.requireVenue(ctx, venueID); err != nil {
		return nil, err
	}

	found, err := r.dao.FindSuggestions(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSuggestions -> %w", err)
	}

	suggestions := make([]domain.Suggestion, len(found))
	for i, s := range found {
		suggestions[i] = suggestionDaoToDomain(s)
	}

	return suggestions, nil
}

func (r *ActivityRepository) requireVenue(ctx context.Context, venueID string) error {
	if _, err := r.catalog.FindVenue(ctx, venueID); err != nil {
		return fmt.Errorf("r.catalog.FindVenue -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) resolveItem(ctx context.Context, venueID, itemID string) error {
	if err := r.requireVenue(ctx, venueID); err != nil {
		return err
	}

	_, err := r.catalog.FindItem(ctx, venueID, itemID)
	if errors.Is(err, dao.ErrNotFound) {
		return fmt.Errorf("%w: %q in venue %q", ErrUnknownItem, itemID, venueID)
	}
	if err != nil {
		return fmt.Errorf("r.catalog.FindItem -> %w", err)
	}

	return nil
}

// stamp fills in the server-assigned id and creation time when the caller left them empty.
func stamp(id string, createdAt time.Time) (string, time.Time) {
	if id == "" {
		id = uuid.NewString()
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return id, createdAt.UTC()
}

func saleDaoToDomain(s dao.SaleEvent) domain.SaleEvent {
	return domain.SaleEvent{
		ID:        s.ID,
		VenueID:   s.VenueID,
		ItemID:    s.ItemID,
		Date:      domain.DayOf(s.Date),
		Quantity:  s.Quantity,
		Revenue:   s.Revenue,
		CreatedAt: s.CreatedAt.UTC(),
	}
}

func ratingDaoToDomain(r dao.Rating) domain.Rating {
	return domain.Rating{
		ID:        r.ID,
		VenueID:   r.VenueID,
		ItemID:    r.ItemID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func ratingsDaoToDomain(found []dao.Rating) []domain.Rating {
	ratings := make([]domain.Rating, len(found))
	for i, r := range found {
		ratings[i] = ratingDaoToDomain(r)
	}

	return ratings
}

func suggestionDaoToDomain(s dao.Suggestion) domain.Suggestion {
	var price *decimal.Decimal
	if s.ExpectedPrice.Valid {
		p := s.ExpectedPrice.Decimal
		price = &p
	}

	return domain.Suggestion{
		ID:            s.ID,
		VenueID:       s.VenueID,
		Name:          s.Name,
		Category:      domain.Category(s.Category),
		Description:   s.Description,
		ExpectedPrice: price,
		DietaryTags:   append([]string{}, s.DietaryTags.Data()...),
		CreatedAt:     s.CreatedAt.UTC(),
	}
}
