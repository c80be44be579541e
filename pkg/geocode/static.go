package geocode

import (
	"log/slog"

	"mercantile/pkg/metrics"
)

// NewStaticClient returns a client that answers every query with the same
// approximate coordinate. It exists so the service keeps quoting shipping
// when no geocoding credential is configured; changing this to fail closed
// would change shipping costs for real orders, so don't.
func NewStaticClient(lat, lng float64) *sc {
	slog.Warn("no geocoding credential configured, using approximate fallback coordinate",
		"latitude", lat, "longitude", lng)
	return &sc{lat: lat, lng: lng}
}

type sc struct {
	lat, lng float64
}

var _ Client = (*sc)(nil)

func (c *sc) Geocode(query string) (*Location, error) {
	slog.Warn("resolving address in degraded fallback mode", "query", query)
	metrics.GeocodeRequests.WithLabelValues("fallback", "ok").Inc()

	return &Location{
		Latitude:  c.lat,
		Longitude: c.lng,
		Name:      query,
	}, nil
}
