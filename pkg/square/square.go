// package square is a thin client over the Square Payments API. It covers
// the one call this service makes; anything fancier belongs in the vendor
// SDK, not here.
package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"
)

const apiVersion = "2024-01-18"

type Client interface {
	SubmitPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

type PaymentRequest struct {
	// SourceID is the tokenized card nonce produced by the Square web SDK.
	SourceID string
	// Amount is in the display currency, e.g. 12.34 dollars.
	Amount   float64
	Currency string
	OrderID  string
}

type PaymentResult struct {
	PaymentID string
	Status    string
	Completed bool
}

func NewClient(h *http.Client, accessToken, locationID, environment string) Client {
	host := "https://connect.squareupsandbox.com"
	if environment == "production" {
		host = "https://connect.squareup.com"
	}

	return &sq{h: h, host: host, accessToken: accessToken, locationID: locationID}
}

type sq struct {
	h           *http.Client
	host        string
	accessToken string
	locationID  string
}

var _ Client = (*sq)(nil)

type createPaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    money  `json:"amount_money"`
	LocationID     string `json:"location_id,omitempty"`
	Note           string `json:"note,omitempty"`
}

type money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createPaymentResponse struct {
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

func (c *sq) SubmitPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	// Square wants the amount in minor units.
	cents := decimal.NewFromFloat(req.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	payload := createPaymentRequest{
		SourceID:       req.SourceID,
		IdempotencyKey: ksuid.New().String(),
		AmountMoney:    money{Amount: cents, Currency: currency},
		LocationID:     c.locationID,
		Note:           req.OrderID,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/v2/payments", bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}

	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+c.accessToken)
	r.Header.Set("Square-Version", apiVersion)

	res, err := c.h.Do(r)
	if err != nil {
		return nil, fmt.Errorf("square request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading square response: %w", err)
	}

	var parsed createPaymentResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decoding square response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		e := parsed.Errors[0]
		return nil, fmt.Errorf("square rejected payment: %s (%s)", e.Detail, e.Code)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("square returned status %d", res.StatusCode)
	}

	return &PaymentResult{
		PaymentID: parsed.Payment.ID,
		Status:    parsed.Payment.Status,
		Completed: parsed.Payment.Status == "COMPLETED",
	}, nil
}
