package shipping

import "github.com/shopspring/decimal"

// Policy holds the tiered pricing constants. All amounts are in the store's
// display currency.
type Policy struct {
	BaseRate              float64
	CostPerMile           float64
	MaxRate               float64
	FreeShippingThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{
		BaseRate:              5.00,
		CostPerMile:           0.50,
		MaxRate:               50.00,
		FreeShippingThreshold: 150.00,
	}
}

// Cost applies the pricing policy, first match wins:
//  1. subtotal at or above the free-shipping threshold ships free,
//  2. otherwise baseRate + distance * costPerMile,
//  3. capped at maxRate,
// rounded half-up on the cent boundary.
func (p Policy) Cost(distanceMiles, subtotal float64) float64 {
	if subtotal >= p.FreeShippingThreshold {
		return 0
	}

	cost := decimal.NewFromFloat(p.BaseRate).
		Add(decimal.NewFromFloat(distanceMiles).Mul(decimal.NewFromFloat(p.CostPerMile)))

	if max := decimal.NewFromFloat(p.MaxRate); cost.GreaterThan(max) {
		cost = max
	}

	f, _ := cost.Round(2).Float64()
	return f
}
