package repo

import (
	"context"

	"panelgrid/internal/platform/store"

	"panelgrid/internal/services/api/supply/domain"
)

// ListAssignments returns the supplier's live assignments ordered by job id
// so repeated calls produce the same catalog order
func (s *pgStore) ListAssignments(ctx context.Context, supplierID string) ([]domain.Assignment, error) {
	const sql = `
		SELECT job_id, survey_id, supplier_id, raw_rate
		FROM supplier_assignments
		WHERE supplier_id = $1
		  AND live
		ORDER BY job_id
	`
	return store.Many(ctx, s.q, func(r store.Row) (domain.Assignment, error) {
		var a domain.Assignment
		if err := r.Scan(&a.GroupID, &a.SurveyID, &a.SupplierID, &a.RawRate); err != nil {
			return domain.Assignment{}, err
		}
		return a, nil
	}, sql, supplierID)
}
