package services

import (
	"context"
	"strings"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/geocode"
)

// GeocodeService defines the interface for address lookup operations
type GeocodeService interface {
	Autocomplete(ctx context.Context, req dto.AutocompleteRequest) (*dto.AutocompleteResponse, error)
	PlaceDetails(ctx context.Context, placeID string) (*dto.PlaceDetailsResponse, error)
}

type geocodeServiceImpl struct {
	client *geocode.Client
}

// NewGeocodeService creates a new geocode service instance
func NewGeocodeService(client *geocode.Client) GeocodeService {
	return &geocodeServiceImpl{client: client}
}

// Autocomplete resolves a free-text query to place suggestions. The
// request's sequence number is echoed back unchanged so the client can
// discard answers to superseded queries.
func (s *geocodeServiceImpl) Autocomplete(ctx context.Context, req dto.AutocompleteRequest) (*dto.AutocompleteResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperrors.NewValidationError("query must not be empty")
	}

	suggestions, err := s.client.Autocomplete(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PlaceSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = dto.PlaceSuggestion{PlaceID: sg.PlaceID, Description: sg.Description}
	}
	return &dto.AutocompleteResponse{Seq: req.Seq, Suggestions: out}, nil
}

func (s *geocodeServiceImpl) PlaceDetails(ctx context.Context, placeID string) (*dto.PlaceDetailsResponse, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, apperrors.NewValidationError("placeId must not be empty")
	}

	details, err := s.client.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if details.Coords == nil {
		// The place exists but carries no usable geometry. Treated as "no
		// coordinates available" so the course simply gets no travel block.
		return nil, apperrors.NewResourceNotFoundError("no coordinates available for this place")
	}
	return &dto.PlaceDetailsResponse{
		PlaceID: details.PlaceID,
		Name:    details.Name,
		Coords:  *details.Coords,
	}, nil
}
