package geocode

type Client interface {
	Geocode(query string) (*Location, error)
}

type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
}
