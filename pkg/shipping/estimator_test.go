package shipping_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"mercantile/pkg/geocode"
	"mercantile/pkg/shipping"
)

type fakeGeocoder struct {
	location *geocode.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(query string) (*geocode.Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

var testOrigin = shipping.Origin{Latitude: 35.8456, Longitude: -103.3181}

func TestEstimateRejectsIncompleteAddress(t *testing.T) {
	geocoder := &fakeGeocoder{location: &geocode.Location{Latitude: 35.0, Longitude: -97.0}}
	estimator := shipping.NewEstimator(geocoder, testOrigin, shipping.DefaultPolicy())

	addr := shipping.Address{Street: "100 Main St", City: "Logan", State: "NM"}
	_, err := estimator.Estimate(addr, 20)

	if !errors.Is(err, shipping.ErrIncompleteAddress) {
		t.Fatalf("want ErrIncompleteAddress, got %v", err)
	}
	if geocoder.calls != 0 {
		t.Errorf("geocoder was called %d times for an incomplete address", geocoder.calls)
	}
}

func TestEstimateRejectsUnresolvableAddress(t *testing.T) {
	geocoder := &fakeGeocoder{err: fmt.Errorf("no results")}
	estimator := shipping.NewEstimator(geocoder, testOrigin, shipping.DefaultPolicy())

	addr := shipping.Address{Street: "100 Main St", City: "Nowhere", State: "ZZ", ZipCode: "00000"}
	_, err := estimator.Estimate(addr, 20)

	if !errors.Is(err, shipping.ErrUnresolvable) {
		t.Fatalf("want ErrUnresolvable, got %v", err)
	}
}

func TestEstimateQuotesFallbackCoordinate(t *testing.T) {
	geocoder := &fakeGeocoder{location: &geocode.Location{Latitude: 35.0, Longitude: -97.0}}
	estimator := shipping.NewEstimator(geocoder, testOrigin, shipping.DefaultPolicy())

	addr := shipping.Address{Street: "100 Main St", City: "Norman", State: "OK", ZipCode: "73019"}
	quote, err := estimator.Estimate(addr, 20)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(quote.DistanceMiles-360.5) > 1 {
		t.Errorf("distance = %v, want ~360.5", quote.DistanceMiles)
	}
	if quote.Cost != 50.00 {
		t.Errorf("cost = %v, want 50.00 (capped)", quote.Cost)
	}
	if quote.Message == "" {
		t.Error("quote message is empty")
	}
}

func TestEstimateFreeShippingMessage(t *testing.T) {
	geocoder := &fakeGeocoder{location: &geocode.Location{Latitude: 35.0, Longitude: -97.0}}
	estimator := shipping.NewEstimator(geocoder, testOrigin, shipping.DefaultPolicy())

	addr := shipping.Address{Street: "100 Main St", City: "Norman", State: "OK", ZipCode: "73019"}
	quote, err := estimator.Estimate(addr, 150.00)
	if err != nil {
		t.Fatal(err)
	}

	if quote.Cost != 0 {
		t.Errorf("cost = %v, want 0", quote.Cost)
	}
	if quote.Message != "Free shipping!" {
		t.Errorf("message = %q, want %q", quote.Message, "Free shipping!")
	}
}

func TestAddressQueryDefaultsCountry(t *testing.T) {
	addr := shipping.Address{Street: "100 Main St", City: "Norman", State: "OK", ZipCode: "73019"}
	want := "100 Main St, Norman, OK 73019, USA"
	if got := addr.Query(); got != want {
		t.Errorf("Query() = %q, want %q", got, want)
	}
}
