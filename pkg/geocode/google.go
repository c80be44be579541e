package geocode

import (
	"fmt"

	"github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/google"

	"mercantile/pkg/metrics"
)

func NewGoogleClient(apiKey string) *gc {
	geocoder := google.Geocoder(apiKey)
	return &gc{geocoder: geocoder}
}

type gc struct {
	geocoder geo.Geocoder
}

var _ Client = (*gc)(nil)

func (c *gc) Geocode(query string) (*Location, error) {
	location, err := c.geocoder.Geocode(query)
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("google", "error").Inc()
		return nil, err
	}

	if location == nil {
		metrics.GeocodeRequests.WithLabelValues("google", "no_results").Inc()
		return nil, fmt.Errorf("unable to geocode address %q", query)
	}

	metrics.GeocodeRequests.WithLabelValues("google", "ok").Inc()
	return &Location{
		Latitude:  location.Lat,
		Longitude: location.Lng,
		Name:      query,
	}, nil
}
