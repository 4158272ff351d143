package services

import "math"

// All money math runs on int64 minor units. Percent rates are carried as
// basis points (5.00% = 500 bps) so commission splits never touch floats.

// CommissionSplit is the division of a gross invoice amount between the
// platform and the biller's linked account.
type CommissionSplit struct {
	CommissionMinor int64
	TransferMinor   int64
}

// SplitCommission divides a gross amount by the configured commission rate.
// Commission rounds half-up; the transfer is the exact remainder so the two
// parts always sum to gross. A disabled commission transfers the full amount.
func SplitCommission(grossMinor int64, commissionEnabled bool, commissionPercentBps int32) CommissionSplit {
	if !commissionEnabled || commissionPercentBps <= 0 {
		return CommissionSplit{CommissionMinor: 0, TransferMinor: grossMinor}
	}
	commission := (grossMinor*int64(commissionPercentBps) + 5000) / 10000
	return CommissionSplit{
		CommissionMinor: commission,
		TransferMinor:   grossMinor - commission,
	}
}

// LineTotalMinor computes a line item total from a possibly fractional
// quantity and a unit rate in minor units, rounded half away from zero.
func LineTotalMinor(quantity float64, unitRateMinor int64) int64 {
	return int64(math.Round(quantity * float64(unitRateMinor)))
}

// InvoiceTotals is the computed amount breakdown for an invoice.
type InvoiceTotals struct {
	SubtotalMinor int64
	DiscountMinor int64
	TaxMinor      int64
	TotalMinor    int64
}

// ApplyTaxAndDiscount computes invoice totals. The discount applies to the
// subtotal and tax applies to the discounted base, both rounded half-up.
func ApplyTaxAndDiscount(subtotalMinor int64, taxRateBps, discountBps int32) InvoiceTotals {
	discount := int64(0)
	if discountBps > 0 {
		discount = (subtotalMinor*int64(discountBps) + 5000) / 10000
	}
	base := subtotalMinor - discount
	tax := int64(0)
	if taxRateBps > 0 {
		tax = (base*int64(taxRateBps) + 5000) / 10000
	}
	return InvoiceTotals{
		SubtotalMinor: subtotalMinor,
		DiscountMinor: discount,
		TaxMinor:      tax,
		TotalMinor:    base + tax,
	}
}
