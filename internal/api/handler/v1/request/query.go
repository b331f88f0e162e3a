package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

var errHalfOpenRange = errors.New("from and to must be given together")

// RangeQuery is an optional inclusive date window, both ends formatted as 2006-01-02.
type RangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q *RangeQuery) Validate() error {
	err := validation.ValidateStruct(
		q,
		validation.Field(&q.From, validation.Date(domain.DayLayout)),
		validation.Field(&q.To, validation.Date(domain.DayLayout)),
	)
	if err != nil {
		return err
	}

	if (q.From == "") != (q.To == "") {
		return errHalfOpenRange
	}

	return nil
}

// Window returns nil when no range was given.
func (q *RangeQuery) Window() *domain.DateRange {
	if q.From == "" {
		return nil
	}

	from, _ := domain.ParseDay(q.From)
	to, _ := domain.ParseDay(q.To)
	r := domain.NewDateRange(from, to)

	return &r
}

type TopSellersQuery struct {
	RangeQuery
	Limit int `form:"limit"`
}

func (q *TopSellersQuery) Validate() error {
	if err := q.RangeQuery.Validate(); err != nil {
		return err
	}

	return validation.ValidateStruct(
		q,
		validation.Field(&q.Limit, validation.Min(1)),
	)
}

type RevenueQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q *RevenueQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.From, validation.Required, validation.Date(domain.DayLayout)),
		validation.Field(&q.To, validation.Required, validation.Date(domain.DayLayout)),
	)
}

func (q *RevenueQuery) Range() domain.DateRange {
	from, _ := domain.ParseDay(q.From)
	to, _ := domain.ParseDay(q.To)

	return domain.NewDateRange(from, to)
}

type SalesQuery struct {
	RangeQuery
	ItemID string `form:"item_id"`
}

type LimitQuery struct {
	Limit int `form:"limit"`
}

func (q *LimitQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Limit, validation.Min(1), validation.Max(100)),
	)
}
