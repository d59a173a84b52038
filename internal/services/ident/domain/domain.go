// Package domain defines the core types and interfaces for the ident service
package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// VerifierPort resolves an API token to the supplier it belongs to
type VerifierPort interface {
	// SupplierForToken returns the supplier id for a presented token,
	// or an unauthorized error when the token is unknown or revoked
	SupplierForToken(ctx context.Context, token string) (string, error)
}

// IssuerPort mints API keys for suppliers. The raw token is returned
// exactly once; only its digest is stored
type IssuerPort interface {
	IssueKey(ctx context.Context, supplierID string) (token string, err error)
}

// TokenDigest computes the stored form of an API token.
// Raw tokens never hit the database
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
