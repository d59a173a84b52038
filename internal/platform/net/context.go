// Package net carries request-scoped identity helpers shared by the
// transport middlewares.
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keySupplierID ctxKey = "supplier_id"

// WithSupplier records the authenticated supplier id on ctx
func WithSupplier(ctx context.Context, supplierID string) context.Context {
	if supplierID != "" {
		ctx = context.WithValue(ctx, keySupplierID, supplierID)
	}
	return ctx
}

// SupplierID returns the authenticated supplier id, "" when absent
func SupplierID(ctx context.Context) string {
	v, _ := ctx.Value(keySupplierID).(string)
	return v
}

// RequestID returns the chi request id, "" when absent
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
