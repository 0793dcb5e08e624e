package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// echoServer answers every autocomplete query with a single prediction
// whose description echoes the input, so tests can tell responses apart.
func echoServer(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		resp := map[string]interface{}{
			"status": "OK",
			"predictions": []map[string]string{
				{"description": "echo:" + input, "place_id": "p-" + input},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return NewClient("k", "", 2*time.Second, nil).WithBaseURL(srv.URL)
}

func TestDebouncerOnlySurvivorFires(t *testing.T) {
	d := NewDebouncer(echoServer(t), 50*time.Millisecond)
	defer d.Stop()

	ctx := context.Background()
	d.Query(ctx, "W")
	d.Query(ctx, "WA")
	last := d.Query(ctx, "WAL")

	select {
	case r := <-d.Results():
		if r.Err != nil {
			t.Fatalf("result error: %v", r.Err)
		}
		if r.Seq != last {
			t.Errorf("seq = %d, want %d", r.Seq, last)
		}
		if len(r.Suggestions) != 1 || r.Suggestions[0].Description != "echo:WAL" {
			t.Errorf("suggestions = %+v", r.Suggestions)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	// The superseded queries must never deliver.
	select {
	case r := <-d.Results():
		t.Errorf("unexpected extra result for seq %d", r.Seq)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncerSequenceIsMonotonic(t *testing.T) {
	d := NewDebouncer(echoServer(t), time.Hour)
	defer d.Stop()

	ctx := context.Background()
	var prev uint64
	for i := 0; i < 10; i++ {
		seq := d.Query(ctx, fmt.Sprintf("q%d", i))
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
	if d.Latest() != prev {
		t.Errorf("Latest = %d, want %d", d.Latest(), prev)
	}
}

func TestDebouncerStaleResultDropped(t *testing.T) {
	// A timer that never fires keeps the channel free of real responses.
	d := NewDebouncer(echoServer(t), time.Hour)
	defer d.Stop()

	ctx := context.Background()
	first := d.Query(ctx, "old")
	d.Query(ctx, "new")

	// The first query's network call raced past its supersession and its
	// answer arrives late. It must be dropped.
	d.deliver(Result{Seq: first})
	select {
	case r := <-d.Results():
		if r.Seq == first {
			t.Error("stale result was delivered")
		}
	case <-time.After(50 * time.Millisecond):
	}
}
