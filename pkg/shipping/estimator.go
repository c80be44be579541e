package shipping

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"mercantile/pkg/geo"
	"mercantile/pkg/geocode"
	"mercantile/pkg/metrics"
)

var (
	ErrIncompleteAddress = errors.New("incomplete address")
	ErrUnresolvable      = errors.New("unable to validate address")
)

// Address is the destination a customer wants an order shipped to.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a Address) Validate() error {
	var missing []string
	if a.Street == "" {
		missing = append(missing, "street")
	}
	if a.City == "" {
		missing = append(missing, "city")
	}
	if a.State == "" {
		missing = append(missing, "state")
	}
	if a.ZipCode == "" {
		missing = append(missing, "zipCode")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteAddress, strings.Join(missing, ", "))
	}

	return nil
}

func (a Address) Query() string {
	country := a.Country
	if country == "" {
		country = "USA"
	}

	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.ZipCode, country)
}

// Origin is the fixed point shipping distance is measured from.
type Origin struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Quote is recomputed per request and never persisted.
type Quote struct {
	DistanceMiles float64 `json:"distance"`
	Cost          float64 `json:"shippingCost"`
	Message       string  `json:"message"`
}

func NewEstimator(geocoder geocode.Client, origin Origin, policy Policy) *Estimator {
	return &Estimator{geocoder: geocoder, origin: origin, policy: policy}
}

type Estimator struct {
	geocoder geocode.Client
	origin   Origin
	policy   Policy
}

// Estimate resolves the destination, measures the great-circle distance from
// the store and prices it. Incomplete addresses are rejected before any
// geocoding happens.
func (e *Estimator) Estimate(addr Address, subtotal float64) (*Quote, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}

	location, err := e.geocoder.Geocode(addr.Query())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvable, err.Error())
	}

	distance := geo.Distance(e.origin.Latitude, e.origin.Longitude, location.Latitude, location.Longitude)
	cost := e.policy.Cost(distance, subtotal)

	message := fmt.Sprintf("Estimated delivery distance: %.0f miles", math.Round(distance))
	if cost == 0 {
		message = "Free shipping!"
	}

	metrics.ShippingQuotes.Inc()

	return &Quote{
		DistanceMiles: math.Round(distance*10) / 10,
		Cost:          cost,
		Message:       message,
	}, nil
}
