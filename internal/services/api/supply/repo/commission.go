package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"panelgrid/internal/platform/store"

	"panelgrid/internal/core/pricing"
)

// CommissionPolicy loads the supplier's commission row. A supplier with no
// row surfaces as not found
func (s *pgStore) CommissionPolicy(ctx context.Context, supplierID string) (pricing.Policy, error) {
	const sql = `
		SELECT is_rev_share, flat_rate, rev_share_percent, cap_amount,
		       admin_fee_enabled, company_id
		FROM supplier_commissions
		WHERE supplier_id = $1
	`
	return store.One(ctx, s.q, func(r store.Row) (pricing.Policy, error) {
		var (
			p    pricing.Policy
			flat decimal.NullDecimal
			cap  decimal.NullDecimal
		)
		if err := r.Scan(&p.IsRevenueShare, &flat, &p.RevSharePercent, &cap, &p.AdminFeeEnabled, &p.CompanyID); err != nil {
			return pricing.Policy{}, err
		}
		if flat.Valid {
			p.FlatRate = &flat.Decimal
		}
		if cap.Valid {
			p.CapAmount = &cap.Decimal
		}
		return p, nil
	}, sql, supplierID)
}

// AdminFeePercent reads the fee percentage off the supplier's company
// settings; a company without a configured fee yields zero
func (s *pgStore) AdminFeePercent(ctx context.Context, companyID int64) (decimal.Decimal, error) {
	const sql = `
		SELECT COALESCE(admin_fee_percent, 0)
		FROM companies
		WHERE id = $1
	`
	return store.Scalar[decimal.Decimal](ctx, s.q, sql, companyID)
}
