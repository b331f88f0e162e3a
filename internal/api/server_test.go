package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao/memory"
)

const signingKey = "test-signing-key"

const importBody = `{
  "name": "Rise Campus Café",
  "subtitle": "Ground floor",
  "items": [
    {"name": "Espresso", "category": "drink", "stock": 10, "max_stock": 40, "price": "2.20"},
    {"id": "bagel", "name": "Bagel", "category": "snack", "stock": 10, "max_stock": 40, "available": false, "price": "3.00"}
  ]
}`

type testServer struct {
	t      *testing.T
	server *Server
	admin  string
	user   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Port:               "8080",
			BaseURL:            "localhost:8080",
			AllowedCORSDomains: []string{"http://localhost:3000"},
			JWTSigningKey:      signingKey,
		},
		Gin:     &config.GinConfig{Mode: "test"},
		Storage: &config.StorageConfig{Driver: config.StorageMemory},
		Metrics: config.DefaultMetricsConfig(),
	}
	store := memory.NewStore()

	admin, err := jwthelper.Generate(signingKey, "alice", string(domain.RoleAdmin), time.Hour)
	require.NoError(t, err)
	user, err := jwthelper.Generate(signingKey, "bob", string(domain.RoleUser), time.Hour)
	require.NoError(t, err)

	return &testServer{
		t:      t,
		server: NewServer(conf, Stores{Catalog: store, Activity: store}),
		admin:  admin,
		user:   user,
	}
}

func (ts *testServer) do(method, path, token, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	ts.t.Helper()

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	ts.server.Router.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) get(path, token string) *httptest.ResponseRecorder {
	return ts.do(http.MethodGet, path, token, "", nil)
}

func (ts *testServer) postJSON(path, token, body string) *httptest.ResponseRecorder {
	return ts.do(http.MethodPost, path, token, "application/json", bytes.NewBufferString(body))
}

func (ts *testServer) seed() {
	ts.t.Helper()

	rec := ts.postJSON("/api/v1/venues/rise/catalog/import", ts.admin, importBody)
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get("/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	ts := newTestServer(t)

	forged, err := jwthelper.Generate("another-key", "mallory", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "no token", token: "", want: http.StatusUnauthorized},
		{name: "forged token", token: forged, want: http.StatusUnauthorized},
		{name: "valid token", token: ts.user, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.get("/api/v1/venues", tt.token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestImportCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postJSON("/api/v1/venues/rise/catalog/import", ts.user, importBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.postJSON("/api/v1/venues/rise/catalog/import", ts.admin, importBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"venue_id":"rise","items":2}`, rec.Body.String())

	rec = ts.postJSON("/api/v1/venues/rise/catalog/import", ts.admin,
		`{"name": "Rise", "items": [{"name": "Espresso", "category": "drink", "stock": 90, "max_stock": 40, "price": "2"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/items", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.Item
	decode(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "espresso", items[0].ID)
	assert.False(t, items[1].Available)

	rec = ts.get("/api/v1/venues/embers", ts.user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.get("/api/v1/venues/rise/items/scone", ts.user)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImportCatalogXLSX(t *testing.T) {
	ts := newTestServer(t)
	ts.seed()

	book := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "category", "stock", "max_stock", "available", "price"},
		{"Flat White", "drink", 30, 40, "yes", "3.10"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow("Sheet1", cell, &row))
	}
	sheet, err := book.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, book.Close())

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("file", "menu.xlsx")
	require.NoError(t, err)
	_, err = part.Write(sheet.Bytes())
	require.NoError(t, err)
	require.NoError(t, form.Close())

	rec := ts.do(http.MethodPost, "/api/v1/venues/rise/catalog/import", ts.admin, form.FormDataContentType(), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.get("/api/v1/venues/rise", ts.user)
	var venue domain.Venue
	decode(t, rec, &venue)
	assert.Equal(t, "Rise Campus Café", venue.Name)

	rec = ts.get("/api/v1/venues/rise/items", ts.user)
	var items []domain.Item
	decode(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "flat-white", items[0].ID)
}

func TestSubmitRating(t *testing.T) {
	ts := newTestServer(t)
	ts.seed()

	tests := []struct {
		name  string
		token string
		body  string
		want  int
	}{
		{name: "user rates available item", token: ts.user, body: `{"item_id": "espresso", "score": 5}`, want: http.StatusCreated},
		{name: "user rates unavailable item", token: ts.user, body: `{"item_id": "bagel", "score": 4}`, want: http.StatusConflict},
		{name: "admin rates unavailable item", token: ts.admin, body: `{"item_id": "bagel", "score": 2}`, want: http.StatusCreated},
		{name: "score out of range", token: ts.user, body: `{"item_id": "espresso", "score": 9}`, want: http.StatusBadRequest},
		{name: "unknown item", token: ts.user, body: `{"item_id": "scone", "score": 3}`, want: http.StatusNotFound},
		{name: "not json", token: ts.user, body: `score=3`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.postJSON("/api/v1/venues/rise/ratings", tt.token, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	rec := ts.get("/api/v1/venues/rise/metrics/items/espresso/rating", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"item_id":"espresso","count":1,"score":5}`, rec.Body.String())

	rec = ts.get("/api/v1/venues/rise/ratings/recent?limit=1", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []domain.Rating
	decode(t, rec, &recent)
	require.Len(t, recent, 1)
	assert.Equal(t, "bagel", recent[0].ItemID)

	rec = ts.get("/api/v1/venues/rise/ratings", ts.user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.get("/api/v1/venues/rise/ratings", ts.admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitSuggestion(t *testing.T) {
	ts := newTestServer(t)
	ts.seed()

	rec := ts.postJSON("/api/v1/venues/rise/suggestions", ts.user,
		`{"name": "Chai Latte", "category": "drink", "description": "Spiced", "expected_price": "3.40", "dietary_tags": ["Vegan"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.postJSON("/api/v1/venues/rise/suggestions", ts.user, `{"name": "Chai Latte", "category": "drink", "description": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/suggestions", ts.user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.get("/api/v1/venues/rise/suggestions", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions []domain.Suggestion
	decode(t, rec, &suggestions)
	require.Len(t, suggestions, 1)
	assert.Equal(t, []string{"vegan"}, suggestions[0].DietaryTags)
}

func TestSalesAndMetrics(t *testing.T) {
	ts := newTestServer(t)
	ts.seed()

	rec := ts.postJSON("/api/v1/venues/rise/sales", ts.user, `{"item_id": "espresso", "quantity": 1, "revenue": "2.20"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	for _, body := range []string{
		`{"item_id": "espresso", "date": "2024-05-01", "quantity": 3, "revenue": "6.60"}`,
		`{"item_id": "espresso", "date": "2024-05-02", "quantity": 7, "revenue": "15.40"}`,
		`{"item_id": "bagel", "date": "2024-05-02", "quantity": 2, "revenue": "6.00"}`,
	} {
		rec = ts.postJSON("/api/v1/venues/rise/sales", ts.admin, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = ts.postJSON("/api/v1/venues/rise/sales", ts.admin, `{"item_id": "espresso", "date": "02/05/2024", "quantity": 1, "revenue": "2.20"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/metrics/stock", ts.user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.get("/api/v1/venues/rise/metrics/stock", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var levels []domain.StockLevel
	decode(t, rec, &levels)
	require.Len(t, levels, 2)
	assert.Equal(t, 25.0, levels[0].StockPercent)
	assert.Equal(t, domain.StockTierMedium, levels[0].Tier)

	rec = ts.get("/api/v1/venues/rise/metrics/top-sellers?limit=1", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	var top []domain.TopSeller
	decode(t, rec, &top)
	require.Len(t, top, 1)
	assert.Equal(t, "espresso", top[0].ItemID)
	assert.Equal(t, 10, top[0].Quantity)

	rec = ts.get("/api/v1/venues/rise/metrics/top-sellers?from=2024-05-01", ts.user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/metrics/revenue/daily?from=2024-05-01&to=2024-05-03", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var days []domain.DailyRevenue
	decode(t, rec, &days)
	require.Len(t, days, 3)
	assert.Equal(t, "21.4", days[1].Revenue.String())
	assert.True(t, days[2].Revenue.IsZero())

	rec = ts.get("/api/v1/venues/rise/metrics/revenue/daily", ts.admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/metrics/revenue/daily?from=2024-05-03&to=2024-05-01", ts.admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/metrics/revenue/share", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var shares []domain.RevenueShare
	decode(t, rec, &shares)
	require.Len(t, shares, 2)
	assert.InDelta(t, 1.0, shares[0].Share+shares[1].Share, 1e-6)

	rec = ts.get("/api/v1/venues/rise/sales?item_id=bagel", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var sales []domain.SaleEvent
	decode(t, rec, &sales)
	assert.Len(t, sales, 1)
}

func TestViews(t *testing.T) {
	ts := newTestServer(t)
	ts.seed()

	rec := ts.get("/api/v1/venues/rise/capabilities", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["viewMenu","submitRating","submitSuggestion","viewTopItems"]`, rec.Body.String())

	rec = ts.get("/api/v1/venues/embers/capabilities", ts.user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	guest, err := jwthelper.Generate(signingKey, "carol", "guest", time.Hour)
	require.NoError(t, err)
	rec = ts.get("/api/v1/venues/rise/capabilities", guest)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.get("/api/v1/venues/rise/dashboard", ts.admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var dashboard map[string]json.RawMessage
	decode(t, rec, &dashboard)
	assert.Contains(t, dashboard, "stock")
	assert.Contains(t, dashboard, "sales")
	assert.NotContains(t, dashboard, "menu")

	rec = ts.get("/api/v1/venues/rise/dashboard", ts.user)
	require.Equal(t, http.StatusOK, rec.Code)
	dashboard = nil
	decode(t, rec, &dashboard)
	assert.Contains(t, dashboard, "menu")
	assert.NotContains(t, dashboard, "stock")
}
