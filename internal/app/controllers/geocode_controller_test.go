package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

type mockGeocodeService struct {
	autocompleteResult *dto.AutocompleteResponse
	autocompleteErr    error
	detailsResult      *dto.PlaceDetailsResponse
	detailsErr         error

	lastPlaceID string
}

func (m *mockGeocodeService) Autocomplete(_ context.Context, req dto.AutocompleteRequest) (*dto.AutocompleteResponse, error) {
	if m.autocompleteErr != nil {
		return nil, m.autocompleteErr
	}
	resp := *m.autocompleteResult
	resp.Seq = req.Seq
	return &resp, nil
}

func (m *mockGeocodeService) PlaceDetails(_ context.Context, placeID string) (*dto.PlaceDetailsResponse, error) {
	m.lastPlaceID = placeID
	return m.detailsResult, m.detailsErr
}

func TestAutocompleteEchoesSeq(t *testing.T) {
	svc := &mockGeocodeService{
		autocompleteResult: &dto.AutocompleteResponse{
			Suggestions: []dto.PlaceSuggestion{{PlaceID: "abc", Description: "Harrison Hall"}},
		},
	}
	router := gin.New()
	router.POST("/api/v1/geocode/autocomplete", NewGeocodeController(svc).Autocomplete)

	w := postJSON(t, router, "/api/v1/geocode/autocomplete", map[string]interface{}{
		"query": "harrison",
		"seq":   7,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing data envelope: %s", w.Body.String())
	}
	if seq, _ := data["seq"].(float64); seq != 7 {
		t.Errorf("seq = %v, want 7", data["seq"])
	}
	if suggestions, _ := data["suggestions"].([]interface{}); len(suggestions) != 1 {
		t.Errorf("suggestions = %v, want one entry", data["suggestions"])
	}
}

func TestAutocompleteBindError(t *testing.T) {
	svc := &mockGeocodeService{}
	router := gin.New()
	router.POST("/api/v1/geocode/autocomplete", NewGeocodeController(svc).Autocomplete)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/geocode/autocomplete", bytes.NewReader([]byte(`{"seq": 1}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAutocompleteUpstreamRejection(t *testing.T) {
	svc := &mockGeocodeService{
		autocompleteErr: apperrors.NewRemoteRejectionError("The provided API key is invalid."),
	}
	router := gin.New()
	router.POST("/api/v1/geocode/autocomplete", NewGeocodeController(svc).Autocomplete)

	w := postJSON(t, router, "/api/v1/geocode/autocomplete", map[string]interface{}{"query": "harrison"})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestPlaceDetailsNotFound(t *testing.T) {
	svc := &mockGeocodeService{
		detailsErr: apperrors.NewResourceNotFoundError("no coordinates available for this place"),
	}
	router := gin.New()
	router.GET("/api/v1/geocode/places/:placeId", NewGeocodeController(svc).PlaceDetails)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/geocode/places/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if svc.lastPlaceID != "nowhere" {
		t.Errorf("placeID = %q, want %q", svc.lastPlaceID, "nowhere")
	}
}
