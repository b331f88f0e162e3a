package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// DayLayout is the wire format of calendar dates.
const DayLayout = "2006-01-02"

var (
	suggestionNameExp = regexp2.MustCompile(`^(?=.*\p{L})[\p{L}\p{N} '&.,()/-]+$`, regexp2.None)
	dietaryTagExp     = regexp2.MustCompile(`^(?!-)[a-z-]{1,30}(?<!-)$`, regexp2.None)
)

type SaleEvent struct {
	ID        string          `json:"id"`
	VenueID   string          `json:"venue_id"`
	ItemID    string          `json:"item_id"`
	Date      time.Time       `json:"date"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *SaleEvent) Validate() error {
	return validation.ValidateStruct(
		s,
		validation.Field(&s.VenueID, validation.Required),
		validation.Field(&s.ItemID, validation.Required),
		validation.Field(&s.Date, validation.Required),
		validation.Field(&s.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&s.Revenue, validation.By(positiveDecimal)),
	)
}

type Rating struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	ItemID    string    `json:"item_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Rating) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.VenueID, validation.Required),
		validation.Field(&r.ItemID, validation.Required),
		validation.Field(&r.Score, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Comment, validation.RuneLength(0, 500)),
	)
}

type Suggestion struct {
	ID            string           `json:"id"`
	VenueID       string           `json:"venue_id"`
	Name          string           `json:"name"`
	Category      Category         `json:"category"`
	Description   string           `json:"description"`
	ExpectedPrice *decimal.Decimal `json:"expected_price,omitempty"`
	DietaryTags   []string         `json:"dietary_tags"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Normalize trims free text and turns the dietary tags into a sorted, deduplicated, lowercase set.
func (s *Suggestion) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	seen := make(map[string]struct{}, len(s.DietaryTags))
	tags := make([]string, 0, len(s.DietaryTags))
	for _, tag := range s.DietaryTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	s.DietaryTags = tags
}

func (s *Suggestion) Validate() error {
	return validation.ValidateStruct(
		s,
		validation.Field(&s.VenueID, validation.Required),
		validation.Field(&s.Name, validation.Required, validation.RuneLength(1, 80),
			validation.By(matches(suggestionNameExp, "must contain at least one letter"))),
		validation.Field(&s.Category, validation.Required, CategoryRule()),
		validation.Field(&s.Description, validation.Required, validation.RuneLength(1, 1000)),
		validation.Field(&s.ExpectedPrice, validation.By(optionalNonNegativeDecimal)),
		validation.Field(&s.DietaryTags, validation.By(dietaryTags)),
	)
}

func matches(exp *regexp2.Regexp, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		ok, err := exp.MatchString(s)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(message)
		}
		return nil
	}
}

func optionalNonNegativeDecimal(value interface{}) error {
	d, _ := value.(*decimal.Decimal)
	if d == nil {
		return nil
	}
	return nonNegativeDecimal(*d)
}

func dietaryTags(value interface{}) error {
	tags, _ := value.([]string)
	for _, tag := range tags {
		ok, err := dietaryTagExp.MatchString(tag)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("must be lowercase words joined by hyphens")
		}
	}
	return nil
}

// DayOf truncates t to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: DayOf(from), To: DayOf(to)}
}

func (r DateRange) Contains(t time.Time) bool {
	day := DayOf(t)
	return !day.Before(r.From) && !day.After(r.To)
}

// Days is the number of calendar days covered, both ends included.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

func (r DateRange) Validate(maxDays int) error {
	if r.From.IsZero() || r.To.IsZero() {
		return errors.New("from and to are required")
	}
	if r.From.After(r.To) {
		return errors.New("from must not be after to")
	}
	if maxDays > 0 && r.Days() > maxDays {
		return errors.New("range is too long")
	}
	return nil
}

type SaleFilter struct {
	ItemID string
	Window *DateRange
}
