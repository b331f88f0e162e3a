package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository"
)

var (
	ErrInvalidInput = repository.ErrInvalidInput
	ErrNotFound     = repository.ErrNotFound
	ErrUnknownItem  = repository.ErrUnknownItem

	ErrInvalidState    = errors.New("invalid state")
	ErrForbidden       = errors.New("forbidden")
	ErrItemUnavailable = errors.New("item unavailable")
)

type CatalogRepository interface {
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, venueID string) (domain.Venue, error)
	GetItems(ctx context.Context, venueID string) ([]domain.Item, error)
	GetItem(ctx context.Context, venueID, itemID string) (domain.Item, error)
	Seed(ctx context.Context, venue domain.Venue, items []domain.Item) error
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.repo.GetVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetVenues -> %w", err)
	}

	return venues, nil
}

func (s *CatalogService) GetVenue(ctx context.Context, venueID string) (domain.Venue, error) {
	venue, err := s.repo.GetVenue(ctx, venueID)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.GetVenue -> %w", err)
	}

	return venue, nil
}

func (s *CatalogService) GetItems(ctx context.Context, venueID string) ([]domain.Item, error) {
	items, err := s.repo.GetItems(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetItems -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) GetItem(ctx context.Context, venueID, itemID string) (domain.Item, error) {
	item, err := s.repo.GetItem(ctx, venueID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.GetItem -> %w", err)
	}

	return item, nil
}

// Seed replaces the venue's catalog with items. Nothing changes if any item is rejected.
func (s *CatalogService) Seed(ctx context.Context, venue domain.Venue, items []domain.Item) error {
	if err := s.repo.Seed(ctx, venue, items); err != nil {
		return fmt.Errorf("s.repo.Seed -> %w", err)
	}

	return nil
}
