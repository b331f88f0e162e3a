package response

type ImportCatalogResponse struct {
	VenueID string `json:"venue_id"`
	Items   int    `json:"items"`
}
