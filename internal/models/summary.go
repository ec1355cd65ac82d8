package models

import "github.com/shopspring/decimal"

// PeriodTotal holds the aggregated amount for one fixed period.
type PeriodTotal struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Summary carries the precomputed totals served by the upstream source for
// the three fixed periods.
type Summary struct {
	Daily   PeriodTotal `json:"daily"`
	Weekly  PeriodTotal `json:"weekly"`
	Monthly PeriodTotal `json:"monthly"`
}
