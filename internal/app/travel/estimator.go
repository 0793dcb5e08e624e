package travel

import (
	"context"
	"math"
	"time"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
)

const earthRadiusKm = 6371.0

// WalkingEstimator derives a travel duration from great-circle distance at
// a fixed walking speed. It serves as the default estimator; a routing API
// client can replace it behind the RouteEstimator interface.
type WalkingEstimator struct {
	// SpeedKmH is the assumed walking speed. Zero falls back to 4.5 km/h.
	SpeedKmH float64
	// MinLead is the floor applied to every estimate, covering packing up
	// and getting out the door.
	MinLead time.Duration
}

func (w WalkingEstimator) Estimate(_ context.Context, origin, dest models.Coordinates) (time.Duration, error) {
	speed := w.SpeedKmH
	if speed <= 0 {
		speed = 4.5
	}
	km := haversineKm(origin, dest)
	dur := time.Duration(km / speed * float64(time.Hour))
	if dur < w.MinLead {
		dur = w.MinLead
	}
	return dur.Round(time.Minute), nil
}

func haversineKm(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
