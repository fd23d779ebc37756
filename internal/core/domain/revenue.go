package domain

import "github.com/shopspring/decimal"

// Per-event rates in currency units.
var (
	impressionRate = decimal.NewFromFloat(0.002)
	clickRate      = decimal.NewFromFloat(0.05)
)

// EstimateRevenue returns the estimated revenue for the given event
// counts: impressions*0.002 + clicks*0.05, rounded to 2 decimal places
// with banker's rounding. Pure and deterministic; monotonically
// non-decreasing in both arguments.
func EstimateRevenue(impressions, clicks int64) float64 {
	revenue := decimal.NewFromInt(impressions).Mul(impressionRate).
		Add(decimal.NewFromInt(clicks).Mul(clickRate))
	f, _ := revenue.RoundBank(2).Float64()
	return f
}
