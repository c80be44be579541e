package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/shipping"
)

// Estimator is the one entry point into the shipping quote flow.
type Estimator interface {
	Estimate(addr shipping.Address, subtotal float64) (*shipping.Quote, error)
}

func NewShippingController(estimator Estimator) *ShippingController {
	return &ShippingController{estimator: estimator}
}

type ShippingController struct {
	estimator Estimator
}

func (ctrl *ShippingController) Calculate(c *gin.Context) {
	var body struct {
		Address  shipping.Address `json:"address"`
		Subtotal float64          `json:"subtotal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping request payload"})
		return
	}

	quote, err := ctrl.estimator.Estimate(body.Address, body.Subtotal)
	switch {
	case errors.Is(err, shipping.ErrIncompleteAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, shipping.ErrUnresolvable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to validate address"})
		return
	case err != nil:
		slog.ErrorContext(c.Request.Context(), "shipping estimate failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, quote)
}
