package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

// Policy answers role questions for the mutation gateway.
type Policy interface {
	Permits(role domain.Role, action domain.Action) bool
	RequiresAvailableItem(role domain.Role) bool
}

// MutationService is the single write path into the activity log.
type MutationService struct {
	activity ActivityRepository
	catalog  CatalogRepository
	policy   Policy
	now      func() time.Time
}

func NewMutationService(activity ActivityRepository, catalog CatalogRepository, policy Policy) *MutationService {
	return &MutationService{
		activity: activity,
		catalog:  catalog,
		policy:   policy,
		now:      time.Now,
	}
}

func (s *MutationService) SubmitRating(ctx context.Context, role domain.Role, rating domain.Rating) (domain.Rating, error) {
	if err := s.authorize(role, domain.ActionRate); err != nil {
		return domain.Rating{}, err
	}

	rating.ID, rating.CreatedAt = "", s.now().UTC()
	if err := rating.Validate(); err != nil {
		return domain.Rating{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.policy.RequiresAvailableItem(role) {
		item, err := s.catalog.GetItem(ctx, rating.VenueID, rating.ItemID)
		switch {
		case errors.Is(err, ErrNotFound):
			// The log reports unknown venues and items itself.
		case err != nil:
			return domain.Rating{}, fmt.Errorf("s.catalog.GetItem -> %w", err)
		case !item.Available:
			return domain.Rating{}, fmt.Errorf("%w: %q is not on the menu", ErrItemUnavailable, item.ID)
		}
	}

	created, err := s.activity.AppendRating(ctx, rating)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("s.activity.AppendRating -> %w", err)
	}

	zap.L().Debug("rating recorded",
		zap.String("venue_id", created.VenueID),
		zap.String("item_id", created.ItemID),
		zap.Int("score", created.Score),
		zap.String("role", string(role)),
	)

	return created, nil
}

func (s *MutationService) SubmitSuggestion(ctx context.Context, role domain.Role, suggestion domain.Suggestion) (domain.Suggestion, error) {
	if err := s.authorize(role, domain.ActionSuggest); err != nil {
		return domain.Suggestion{}, err
	}

	suggestion.ID, suggestion.CreatedAt = "", s.now().UTC()
	created, err := s.activity.AppendSuggestion(ctx, suggestion)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("s.activity.AppendSuggestion -> %w", err)
	}

	zap.L().Debug("suggestion recorded",
		zap.String("venue_id", created.VenueID),
		zap.String("name", created.Name),
		zap.String("role", string(role)),
	)

	return created, nil
}

// RecordSale appends a sale. A missing date means today.
func (s *MutationService) RecordSale(ctx context.Context, role domain.Role, sale domain.SaleEvent) (domain.SaleEvent, error) {
	if err := s.authorize(role, domain.ActionSell); err != nil {
		return domain.SaleEvent{}, err
	}

	now := s.now().UTC()
	sale.ID, sale.CreatedAt = "", now
	if sale.Date.IsZero() {
		sale.Date = now
	}

	created, err := s.activity.AppendSale(ctx, sale)
	if err != nil {
		return domain.SaleEvent{}, fmt.Errorf("s.activity.AppendSale -> %w", err)
	}

	zap.L().Debug("sale recorded",
		zap.String("venue_id", created.VenueID),
		zap.String("item_id", created.ItemID),
		zap.Int("quantity", created.Quantity),
		zap.String("revenue", created.Revenue.String()),
	)

	return created, nil
}

func (s *MutationService) authorize(role domain.Role, action domain.Action) error {
	if !s.policy.Permits(role, action) {
		return fmt.Errorf("%w: role %q may not %s", ErrForbidden, role, action)
	}

	return nil
}
