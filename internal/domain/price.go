package domain

import "math"

// PerNightRates is the nightly rate per guest category.
type PerNightRates struct {
	Adult float64 `json:"adult"`
	Child float64 `json:"child"`
	Baby  float64 `json:"baby"`
}

// PriceDetail is the backend's price breakdown for a stay. The gateway never
// computes prices; it only compares and reconciles two details to decide what
// to display.
type PriceDetail struct {
	Nights           int            `json:"nights"`
	Counts           OccupancyCount `json:"counts"`
	PerNight         PerNightRates  `json:"per_night"`
	SubtotalPerNight float64        `json:"subtotal_per_night"`
	Total            float64        `json:"total"`
}

// Round2 rounds a money amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func moneyEqual(a, b float64) bool {
	return Round2(a) == Round2(b)
}

// PriceDetailsEqual reports whether two details display the same numbers,
// tolerant to floating rounding at 2 decimals. Absent numeric fields are
// zero-valued and compare as 0.
func PriceDetailsEqual(a, b *PriceDetail) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Nights == b.Nights &&
		a.Counts == b.Counts &&
		moneyEqual(a.PerNight.Adult, b.PerNight.Adult) &&
		moneyEqual(a.PerNight.Child, b.PerNight.Child) &&
		moneyEqual(a.PerNight.Baby, b.PerNight.Baby) &&
		moneyEqual(a.SubtotalPerNight, b.SubtotalPerNight) &&
		moneyEqual(a.Total, b.Total)
}

// PriceReconciliation is the display decision after merging a fresh preview
// with the current baseline.
type PriceReconciliation struct {
	Changed   bool
	Effective *PriceDetail
}

// ReconcilePrice decides which detail is authoritative for display. A nil
// incoming detail (aborted preview, invalid inputs) reverts to the baseline:
// once a base price existed the UI never shows a blank price.
func ReconcilePrice(base, incoming *PriceDetail) PriceReconciliation {
	if incoming == nil {
		return PriceReconciliation{Changed: false, Effective: base}
	}
	if PriceDetailsEqual(base, incoming) {
		return PriceReconciliation{Changed: false, Effective: base}
	}
	return PriceReconciliation{Changed: true, Effective: incoming}
}
