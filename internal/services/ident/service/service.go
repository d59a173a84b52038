// Package service implements supplier token verification
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"

	"panelgrid/internal/services/ident/domain"
	irepo "panelgrid/internal/services/ident/repo"
)

// Service is the concrete implementation of domain.VerifierPort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[irepo.Storage]
}

// New constructs an ident service
func New(db repokit.TxRunner, binder repokit.Binder[irepo.Storage]) *Service {
	if db == nil {
		panic("ident.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non-nil repo Binder")
	}
	return &Service{DB: db, Repo: binder}
}

var (
	_ domain.VerifierPort = (*Service)(nil)
	_ domain.IssuerPort   = (*Service)(nil)
)

// SupplierForToken resolves a presented API token to a supplier id
func (s *Service) SupplierForToken(ctx context.Context, token string) (string, error) {
	st := s.Repo.Bind(repokit.PG(ctx, s.DB))
	sid, err := st.SupplierIDByDigest(ctx, domain.TokenDigest(token))
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return "", perr.Unauthorizedf("invalid bearer token")
		}
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "verify supplier token")
	}
	return sid, nil
}

// IssueKey mints a new API key for the supplier and returns the raw token.
// Only the digest is persisted
func (s *Service) IssueKey(ctx context.Context, supplierID string) (string, error) {
	if supplierID == "" {
		return "", perr.Newf(perr.ErrorCodeInvalidArgument, "supplier id required")
	}
	token := uuid.NewString()
	err := repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		return s.Repo.Bind(q).InsertKey(ctx, supplierID, domain.TokenDigest(token))
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeDB, "store api key for supplier %s", supplierID)
	}
	return token, nil
}
