package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", "us", 2*time.Second, nil).WithBaseURL(srv.URL)
}

func TestAutocomplete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/autocomplete/json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("components"); got != "country:us" {
			t.Errorf("components = %q", got)
		}
		w.Write([]byte(`{
			"status": "OK",
			"predictions": [
				{"description": "WALC, West Lafayette, IN", "place_id": "p1"},
				{"description": "Walgreens, West Lafayette, IN", "place_id": "p2"}
			]
		}`))
	})

	got, err := c.Autocomplete(context.Background(), "WAL")
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if len(got) != 2 || got[0].PlaceID != "p1" || got[1].Description != "Walgreens, West Lafayette, IN" {
		t.Errorf("suggestions = %+v", got)
	}
}

func TestAutocompleteZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "predictions": []}`))
	})
	got, err := c.Autocomplete(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("zero results should not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("suggestions = %+v", got)
	}
}

func TestAutocompleteRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	})
	_, err := c.Autocomplete(context.Background(), "WAL")
	if !errors.Is(err, apperrors.ErrRemoteRejection) {
		t.Fatalf("err = %v, want ErrRemoteRejection", err)
	}
	if err.Error() != "The provided API key is invalid." {
		t.Errorf("upstream message not preserved verbatim: %q", err.Error())
	}
}

func TestDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/details/json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("place_id"); got != "p1" {
			t.Errorf("place_id = %q", got)
		}
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Wilmeth Active Learning Center",
				"geometry": {"location": {"lat": 40.4274, "lng": -86.9137}}
			}
		}`))
	})

	got, err := c.Details(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if got.Coords == nil {
		t.Fatal("coords missing")
	}
	if got.Coords.Latitude != 40.4274 || got.Coords.Longitude != -86.9137 {
		t.Errorf("coords = %+v", got.Coords)
	}
}

func TestDetailsMissingGeometry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "result": {"name": "Somewhere"}}`))
	})

	got, err := c.Details(context.Background(), "p1")
	if err != nil {
		t.Fatalf("missing geometry must not be a hard error: %v", err)
	}
	if got.Coords != nil {
		t.Errorf("coords = %+v, want nil", got.Coords)
	}
}

func TestTimeoutSurfacesAsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "", 20*time.Millisecond, nil).WithBaseURL(srv.URL)
	_, err := c.Autocomplete(context.Background(), "WAL")
	if !errors.Is(err, apperrors.ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestUnreachableSurfacesAsNetwork(t *testing.T) {
	c := NewClient("test-key", "", time.Second, nil).WithBaseURL("http://127.0.0.1:1")
	_, err := c.Autocomplete(context.Background(), "WAL")
	if !errors.Is(err, apperrors.ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
}
