package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/metrics"
	"mercantile/pkg/square"
)

func NewPaymentsController(payments square.Client, applicationID, locationID string) *PaymentsController {
	return &PaymentsController{payments: payments, applicationID: applicationID, locationID: locationID}
}

type PaymentsController struct {
	payments      square.Client
	applicationID string
	locationID    string
}

func (ctrl *PaymentsController) Submit(c *gin.Context) {
	var body struct {
		SourceID string  `json:"sourceId"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		OrderID  string  `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payment payload"})
		return
	}

	if body.SourceID == "" || body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required payment fields"})
		return
	}

	result, err := ctrl.payments.SubmitPayment(c.Request.Context(), square.PaymentRequest{
		SourceID: body.SourceID,
		Amount:   body.Amount,
		Currency: body.Currency,
		OrderID:  body.OrderID,
	})
	if err != nil {
		metrics.Payments.WithLabelValues("error").Inc()
		slog.ErrorContext(c.Request.Context(), "payment submission failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment processing failed"})
		return
	}

	if !result.Completed {
		metrics.Payments.WithLabelValues("not_completed").Inc()
		slog.WarnContext(c.Request.Context(), "payment not completed",
			"payment_id", result.PaymentID, "status", result.Status)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Payment not completed",
			"status":  result.Status,
		})
		return
	}

	metrics.Payments.WithLabelValues("completed").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"paymentId": result.PaymentID,
		"status":    result.Status,
	})
}

func (ctrl *PaymentsController) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"squareApplicationId": ctrl.applicationID,
		"locationId":          ctrl.locationID,
	})
}
