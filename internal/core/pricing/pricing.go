// Package pricing computes the effective CPI a supplier is paid per complete.
//
// The commission model has two shapes: a flat rate that short-circuits
// everything else, and a revenue share applied after an optional company
// level admin fee is deducted from the group's base CPI. A configured cap
// amount is a hard ceiling on the revenue share result. All money math runs
// on decimals; rounding is half away from zero at two places and happens
// only at the published points, never in between.
package pricing

import (
	"github.com/shopspring/decimal"

	perr "panelgrid/internal/platform/errors"
)

var hundred = decimal.NewFromInt(100)

// Policy is a supplier's commission configuration
type Policy struct {
	// IsRevenueShare selects the commission shape. When false and FlatRate
	// is set and non-negative the flat rate wins outright
	IsRevenueShare bool

	// FlatRate is the fixed payout per complete, nil when not configured
	FlatRate *decimal.Decimal

	// RevSharePercent is the supplier's share of the fee-adjusted CPI.
	// Zero is a valid configuration and prices every group at 0.00
	RevSharePercent decimal.Decimal

	// CapAmount is the contractual ceiling, nil when uncapped
	CapAmount *decimal.Decimal

	// AdminFeeEnabled gates the company admin fee lookup
	AdminFeeEnabled bool

	// CompanyID owns the admin fee configuration
	CompanyID int64
}

// Validate reports a policy that cannot price anything.
// Partial configuration is tolerated where the legacy data tolerates it;
// only states with no usable rate or a nonsensical ceiling are rejected
func (p Policy) Validate() error {
	if p.RevSharePercent.IsNegative() {
		return perr.Policyf("commission policy: revenue share percent is negative")
	}
	if p.CapAmount != nil && p.CapAmount.IsNegative() {
		return perr.Policyf("commission policy: cap amount is negative")
	}
	if !p.IsRevenueShare && p.FlatRate == nil {
		return perr.Policyf("commission policy: flat rate mode without a flat rate")
	}
	return nil
}

// ComputeCPI prices one group for a supplier.
//
//	flat rate set and >= 0 (non rev-share)  -> round2(flatRate)
//	otherwise                               -> round2(revShare% * (base - adminFee% * base))
//	                                           capped at round2(capAmount)
//
// The cap comparison uses the unrounded revenue share value.
// adminFeePercent is the company fee resolved once per request; it only
// applies when the policy enables it and the fee is positive
func ComputeCPI(base decimal.Decimal, pol Policy, adminFeePercent decimal.Decimal) decimal.Decimal {
	if !pol.IsRevenueShare && pol.FlatRate != nil && !pol.FlatRate.IsNegative() {
		return round2(*pol.FlatRate)
	}

	afterFee := base
	if pol.AdminFeeEnabled && adminFeePercent.IsPositive() {
		afterFee = base.Sub(adminFeePercent.Div(hundred).Mul(base))
	}

	afterShare := pol.RevSharePercent.Div(hundred).Mul(afterFee)

	out := round2(afterShare)
	if pol.CapAmount != nil && afterShare.GreaterThan(*pol.CapAmount) {
		out = round2(*pol.CapAmount)
	}
	return out
}

// Money renders d as a two decimal place string for the wire
func Money(d decimal.Decimal) string { return d.StringFixed(2) }

// round2 rounds half away from zero to two decimal places
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
