package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

type ActivityRepository interface {
	AppendSale(ctx context.Context, sale domain.SaleEvent) (domain.SaleEvent, error)
	AppendRating(ctx context.Context, rating domain.Rating) (domain.Rating, error)
	AppendSuggestion(ctx context.Context, suggestion domain.Suggestion) (domain.Suggestion, error)
	QuerySales(ctx context.Context, venueID string, filter domain.SaleFilter) ([]domain.SaleEvent, error)
	QueryRatings(ctx context.Context, venueID, itemID string) ([]domain.Rating, error)
	RecentRatings(ctx context.Context, venueID string, limit int) ([]domain.Rating, error)
	QuerySuggestions(ctx context.Context, venueID string) ([]domain.Suggestion, error)
}

// ActivityService is the read side of the activity log.
type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
	}
}

func (s *ActivityService) QuerySales(ctx context.Context, venueID string, filter domain.SaleFilter) ([]domain.SaleEvent, error) {
	sales, err := s.repo.QuerySales(ctx, venueID, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.QuerySales -> %w", err)
	}

	return sales, nil
}

func (s *ActivityService) QueryRatings(ctx context.Context, venueID, itemID string) ([]domain.Rating, error) {
	ratings, err := s.repo.QueryRatings(ctx, venueID, itemID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.QueryRatings -> %w", err)
	}

	return ratings, nil
}

func (s *ActivityService) RecentRatings(ctx context.Context, venueID string, limit int) ([]domain.Rating, error) {
	ratings, err := s.repo.RecentRatings(ctx, venueID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RecentRatings -> %w", err)
	}

	return ratings, nil
}

func (s *ActivityService) QuerySuggestions(ctx context.Context, venueID string) ([]domain.Suggestion, error) {
	suggestions, err := s.repo.QuerySuggestions(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.QuerySuggestions -> %w", err)
	}

	return suggestions, nil
}
