// Package repo provides Postgres bindings for the ident service
package repo

import (
	"context"

	"panelgrid/internal/modkit/repokit"
	"panelgrid/internal/platform/store"
)

// Storage is the credential surface
type Storage interface {
	// SupplierIDByDigest resolves an active key digest to its supplier id
	SupplierIDByDigest(ctx context.Context, digest string) (string, error)

	// InsertKey stores a new active key digest for the supplier
	InsertKey(ctx context.Context, supplierID, digest string) error
}

// NewPG constructs a Postgres storage binder
func NewPG() repokit.Binder[Storage] {
	return repokit.BindFunc[Storage](func(q repokit.Queryer) Storage { return &pgStore{q: q} })
}

type pgStore struct{ q repokit.Queryer }

func (s *pgStore) SupplierIDByDigest(ctx context.Context, digest string) (string, error) {
	const sql = `
		SELECT supplier_id
		FROM supplier_api_keys
		WHERE token_digest = $1
		  AND active
	`
	return store.One(ctx, s.q, func(r store.Row) (string, error) {
		var sid string
		if err := r.Scan(&sid); err != nil {
			return "", err
		}
		return sid, nil
	}, sql, digest)
}

func (s *pgStore) InsertKey(ctx context.Context, supplierID, digest string) error {
	const sql = `
		INSERT INTO supplier_api_keys (supplier_id, token_digest, active)
		VALUES ($1, $2, TRUE)
	`
	_, err := s.q.Exec(ctx, sql, supplierID, digest)
	return err
}
