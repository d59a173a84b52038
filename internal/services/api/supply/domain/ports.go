package domain

import "context"

// CatalogPort is the supply service interface
type CatalogPort interface {
	// ListLive resolves the supplier's live catalog: assignments joined
	// with group detail, priced, targeted and flagged, ready to publish
	ListLive(ctx context.Context, in ListInput) ([]ResolvedGroup, error)
}
