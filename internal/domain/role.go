package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Capability string

const (
	CapabilityViewStock            Capability = "viewStock"
	CapabilityViewSalesAnalytics   Capability = "viewSalesAnalytics"
	CapabilityViewRatingsPanel     Capability = "viewRatingsPanel"
	CapabilityViewSuggestionsInbox Capability = "viewSuggestionsInbox"
	CapabilityViewMenu             Capability = "viewMenu"
	CapabilitySubmitRating         Capability = "submitRating"
	CapabilitySubmitSuggestion     Capability = "submitSuggestion"
	CapabilityViewTopItems         Capability = "viewTopItems"
)

// Action is a mutation guarded by role.
type Action string

const (
	ActionRate    Action = "rate"
	ActionSuggest Action = "suggest"
	ActionSell    Action = "sell"
	ActionImport  Action = "import"
)

type SalesAnalytics struct {
	TopSellers   []TopSeller    `json:"top_sellers"`
	DailyRevenue []DailyRevenue `json:"daily_revenue"`
	RevenueShare []RevenueShare `json:"revenue_share"`
}

type RatingsPanel struct {
	Overview RatingsOverview `json:"overview"`
	Trend    []TrendPoint    `json:"trend"`
	Recent   []Rating        `json:"recent"`
}

// Dashboard holds one section per capability of the role; sections the role lacks stay nil.
type Dashboard struct {
	Venue         Venue           `json:"venue"`
	Role          Role            `json:"role"`
	Capabilities  []Capability    `json:"capabilities"`
	Stock         []StockLevel    `json:"stock,omitempty"`
	Sales         *SalesAnalytics `json:"sales,omitempty"`
	Ratings       *RatingsPanel   `json:"ratings,omitempty"`
	Suggestions   []Suggestion    `json:"suggestions,omitempty"`
	Menu          []Item          `json:"menu,omitempty"`
	TopItems      []TopSeller     `json:"top_items,omitempty"`
	RecentRatings []Rating        `json:"recent_ratings,omitempty"`
}
