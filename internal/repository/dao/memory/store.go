// Package memory keeps catalogs and activity logs in process memory.
// It satisfies the same DAO contracts as the GORM implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao"
)

type Store struct {
	mu          sync.RWMutex
	venues      map[string]dao.Venue
	items       map[string][]dao.Item
	sales       map[string][]dao.SaleEvent
	ratings     map[string][]dao.Rating
	suggestions map[string][]dao.Suggestion
	seq         int64
}

func NewStore() *Store {
	return &Store{
		venues:      make(map[string]dao.Venue),
		items:       make(map[string][]dao.Item),
		sales:       make(map[string][]dao.SaleEvent),
		ratings:     make(map[string][]dao.Rating),
		suggestions: make(map[string][]dao.Suggestion),
	}
}

func (s *Store) FindVenues(ctx context.Context) ([]dao.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]dao.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		venues = append(venues, v)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })

	return venues, nil
}

func (s *Store) FindVenue(ctx context.Context, venueID string) (dao.Venue, error) {
	if err := ctx.Err(); err != nil {
		return dao.Venue{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[venueID]
	if !ok {
		return dao.Venue{}, dao.ErrNotFound
	}

	return v, nil
}

func (s *Store) FindItems(ctx context.Context, venueID string) ([]dao.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]dao.Item(nil), s.items[venueID]...), nil
}

func (s *Store) FindItem(ctx context.Context, venueID, itemID string) (dao.Item, error) {
	if err := ctx.Err(); err != nil {
		return dao.Item{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items[venueID] {
		if item.ID == itemID {
			return item, nil
		}
	}

	return dao.Item{}, dao.ErrNotFound
}

func (s *Store) ReplaceCatalog(ctx context.Context, venue dao.Venue, items []dao.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.venues[venue.ID]; ok {
		venue.CreatedAt = existing.CreatedAt
	} else {
		venue.CreatedAt = now
	}
	venue.UpdatedAt = now

	s.venues[venue.ID] = venue
	s.items[venue.ID] = append([]dao.Item(nil), items...)

	return nil
}

func (s *Store) InsertSale(ctx context.Context, sale dao.SaleEvent) (dao.SaleEvent, error) {
	if err := ctx.Err(); err != nil {
		return dao.SaleEvent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[sale.VenueID]; !ok {
		return dao.SaleEvent{}, dao.ErrNotFound
	}

	s.seq++
	sale.Seq = s.seq
	s.sales[sale.VenueID] = append(s.sales[sale.VenueID], sale)

	return sale, nil
}

func (s *Store) InsertRating(ctx context.Context, rating dao.Rating) (dao.Rating, error) {
	if err := ctx.Err(); err != nil {
		return dao.Rating{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[rating.VenueID]; !ok {
		return dao.Rating{}, dao.ErrNotFound
	}

	s.seq++
	rating.Seq = s.seq
	s.ratings[rating.VenueID] = append(s.ratings[rating.VenueID], rating)

	return rating, nil
}

func (s *Store) InsertSuggestion(ctx context.Context, suggestion dao.Suggestion) (dao.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return dao.Suggestion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[suggestion.VenueID]; !ok {
		return dao.Suggestion{}, dao.ErrNotFound
	}

	s.seq++
	suggestion.Seq = s.seq
	s.suggestions[suggestion.VenueID] = append(s.suggestions[suggestion.VenueID], suggestion)

	return suggestion, nil
}

func (s *Store) FindSales(ctx context.Context, venueID string, q dao.SaleQuery) ([]dao.SaleEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]dao.SaleEvent, 0, len(s.sales[venueID]))
	for _, sale := range s.sales[venueID] {
		if q.ItemID != "" && sale.ItemID != q.ItemID {
			continue
		}
		if q.From != nil && sale.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && sale.Date.After(*q.To) {
			continue
		}
		sales = append(sales, sale)
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.Before(sales[j].Date)
	})

	return sales, nil
}

func (s *Store) FindRatings(ctx context.Context, venueID, itemID string) ([]dao.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make([]dao.Rating, 0, len(s.ratings[venueID]))
	for _, r := range s.ratings[venueID] {
		if itemID == "" || r.ItemID == itemID {
			ratings = append(ratings, r)
		}
	}

	return ratings, nil
}

func (s *Store) FindRecentRatings(ctx context.Context, venueID string, limit int) ([]dao.Rating, error) {
	ratings, err := s.FindRatings(ctx, venueID, "")
	if err != nil {
		return nil, err
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if !ratings[i].CreatedAt.Equal(ratings[j].CreatedAt) {
			return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
		}
		return ratings[i].Seq > ratings[j].Seq
	})
	if limit >= 0 && len(ratings) > limit {
		ratings = ratings[:limit]
	}

	return ratings, nil
}

func (s *Store) FindSuggestions(ctx context.Context, venueID string) ([]dao.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	suggestions := append([]dao.Suggestion(nil), s.suggestions[venueID]...)
	sort.SliceStable(suggestions, func(i, j int) bool {
		if !suggestions[i].CreatedAt.Equal(suggestions[j].CreatedAt) {
			return suggestions[i].CreatedAt.After(suggestions[j].CreatedAt)
		}
		return suggestions[i].Seq > suggestions[j].Seq
	})

	return suggestions, nil
}

// PutItem overwrites a single catalog row without validation. Tests use it to
// reach states the repository refuses to create.
func (s *Store) PutItem(venueID string, item dao.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.VenueID = venueID
	for i, existing := range s.items[venueID] {
		if existing.ID == item.ID {
			s.items[venueID][i] = item
			return
		}
	}
	s.items[venueID] = append(s.items[venueID], item)
}
