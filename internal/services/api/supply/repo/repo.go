// Package repo provides the storage repository implementation for the supply service
package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"panelgrid/internal/modkit/repokit"

	"panelgrid/internal/core/pricing"
	"panelgrid/internal/core/targeting"
	"panelgrid/internal/services/api/supply/domain"
)

// Storage defines the storage repository interface for the supply service
type Storage interface {
	// ListAssignments returns the supplier's live assignments in stable order
	ListAssignments(ctx context.Context, supplierID string) ([]domain.Assignment, error)

	// GroupsByIDs returns group detail keyed by survey id, optionally
	// filtered to groups modified at or after changedSince
	GroupsByIDs(ctx context.Context, surveyIDs []int64, changedSince *time.Time) (map[int64]domain.GroupDetail, error)

	// Reference tables, each keyed by id
	Languages(ctx context.Context) (map[int64]string, error)
	Categories(ctx context.Context) (map[int64]string, error)
	JobCategories(ctx context.Context) (map[int64]string, error)

	// JobCategoryIDs maps job ids to their category id; jobs without a
	// category are absent from the result
	JobCategoryIDs(ctx context.Context, jobIDs []int64) (map[int64]int64, error)

	// CommissionPolicy loads the supplier's commission configuration
	CommissionPolicy(ctx context.Context, supplierID string) (pricing.Policy, error)

	// AdminFeePercent loads the platform fee percentage configured on the
	// supplier's company
	AdminFeePercent(ctx context.Context, companyID int64) (decimal.Decimal, error)

	// TargetingOptions returns the raw option document per survey id
	TargetingOptions(ctx context.Context, surveyIDs []int64) (map[int64]targeting.OptionDoc, error)

	// ActiveQuotaSurveyIDs returns the subset of surveyIDs that have at
	// least one active quota
	ActiveQuotaSurveyIDs(ctx context.Context, surveyIDs []int64) (map[int64]struct{}, error)
}

// NewPG constructs a Postgres storage binder
func NewPG() repokit.Binder[Storage] {
	return repokit.BindFunc[Storage](func(q repokit.Queryer) Storage { return &pgStore{q: q} })
}

type pgStore struct{ q repokit.Queryer }
