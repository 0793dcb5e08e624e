// Package geocode wraps the Google Places API for address autocomplete and
// place-to-coordinate resolution, with a Redis cache for resolved places.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Place details never change for a given place_id, so cached entries can
// live a long time.
const detailsCacheTTL = 30 * 24 * time.Hour

const detailsCachePrefix = "place:"

// Suggestion is one autocomplete prediction.
type Suggestion struct {
	Description string
	PlaceID     string
}

// PlaceDetails is a resolved place.
type PlaceDetails struct {
	PlaceID string              `json:"placeId"`
	Name    string              `json:"name"`
	Coords  *models.Coordinates `json:"coords"`
}

// Client calls the Places API. A nil redis client disables caching.
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
	cache      *redis.Client
}

// NewClient creates a Places client. country is an ISO 3166-1 alpha-2 code
// used to bias autocomplete results ("us"); empty disables biasing.
func NewClient(apiKey, country string, timeout time.Duration, cache *redis.Client) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		country:    country,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name     string `json:"name"`
		Geometry *struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Autocomplete returns ordered predictions for a free-text query.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("key", c.apiKey)
	if c.country != "" {
		params.Set("components", "country:"+c.country)
	}

	var body autocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", params, &body); err != nil {
		return nil, err
	}
	if err := checkStatus(body.Status, body.ErrorMessage); err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(body.Predictions))
	for _, p := range body.Predictions {
		out = append(out, Suggestion{Description: p.Description, PlaceID: p.PlaceID})
	}
	return out, nil
}

// Details resolves a place identifier to coordinates. A response without
// the expected geometry shape yields nil coordinates, not an error.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	if cached := c.cachedDetails(ctx, placeID); cached != nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,geometry")
	params.Set("key", c.apiKey)

	var body detailsResponse
	if err := c.get(ctx, "/details/json", params, &body); err != nil {
		return nil, err
	}
	if err := checkStatus(body.Status, body.ErrorMessage); err != nil {
		return nil, err
	}

	details := &PlaceDetails{PlaceID: placeID, Name: body.Result.Name}
	if body.Result.Geometry != nil {
		details.Coords = &models.Coordinates{
			Latitude:  body.Result.Geometry.Location.Lat,
			Longitude: body.Result.Geometry.Location.Lng,
		}
	}

	c.storeDetails(ctx, details)
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return apperrors.NewCustomError(apperrors.ErrTimeout, "geocoding service timed out")
		}
		return apperrors.NewNetworkError("geocoding service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewRemoteRejectionError(fmt.Sprintf("geocoding service returned HTTP %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError("reading geocoding response failed")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewRemoteRejectionError("geocoding service returned an unexpected payload")
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}

// checkStatus maps Places API status codes. ZERO_RESULTS is a valid empty
// answer; everything else unexpected is a rejection with the upstream
// message preserved.
func checkStatus(status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	default:
		if message == "" {
			message = "geocoding request rejected: " + status
		}
		return apperrors.NewRemoteRejectionError(message)
	}
}

func (c *Client) cachedDetails(ctx context.Context, placeID string) *PlaceDetails {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, detailsCachePrefix+placeID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("place details cache read failed")
		}
		return nil
	}
	var details PlaceDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil
	}
	return &details
}

func (c *Client) storeDetails(ctx context.Context, details *PlaceDetails) {
	if c.cache == nil || details.Coords == nil {
		return
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, detailsCachePrefix+details.PlaceID, raw, detailsCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("place details cache write failed")
	}
}
