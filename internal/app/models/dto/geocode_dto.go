package dto

import "github.com/pranaynookala001/PurdueGo2025/internal/app/models"

// AutocompleteRequest is the body of POST /api/v1/geocode/autocomplete.
// Seq is a client-assigned, monotonically increasing request number used
// to discard responses for superseded queries.
type AutocompleteRequest struct {
	Query string `json:"query" binding:"required"`
	Seq   uint64 `json:"seq"`
}

// PlaceSuggestion is one autocomplete prediction.
type PlaceSuggestion struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}

// AutocompleteResponse echoes the request sequence number so the client can
// identify stale answers.
type AutocompleteResponse struct {
	Seq         uint64            `json:"seq"`
	Suggestions []PlaceSuggestion `json:"suggestions"`
}

// PlaceDetailsResponse resolves a place identifier to coordinates.
type PlaceDetailsResponse struct {
	PlaceID string             `json:"placeId"`
	Name    string             `json:"name"`
	Coords  models.Coordinates `json:"coords"`
}
