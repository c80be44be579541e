package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GeocodeRequests counts address resolutions by mode. The "fallback"
	// mode means no geocoding credential is configured and the service is
	// answering with an approximate hardcoded coordinate.
	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geocode_requests_total",
		Help: "Address resolution attempts, labelled by resolution mode.",
	}, []string{"mode", "outcome"})

	ShippingQuotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_quotes_total",
		Help: "Shipping quotes computed.",
	})

	Payments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_total",
		Help: "Payment submissions, labelled by result.",
	}, []string{"result"})
)

// Handler exposes the default prometheus registry on a gin route.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
