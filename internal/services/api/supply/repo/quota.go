package repo

import (
	"context"

	"panelgrid/internal/platform/store"
)

// ActiveQuotaSurveyIDs returns the assigned surveys that have at least one
// active quota; membership is all the service needs
func (s *pgStore) ActiveQuotaSurveyIDs(ctx context.Context, surveyIDs []int64) (map[int64]struct{}, error) {
	if len(surveyIDs) == 0 {
		return map[int64]struct{}{}, nil
	}
	const sql = `
		SELECT DISTINCT survey_id
		FROM survey_quotas
		WHERE survey_id = ANY($1)
		  AND status = 'active'
	`
	ids, err := store.Many(ctx, s.q, func(r store.Row) (int64, error) {
		var id int64
		if err := r.Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}, sql, surveyIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}
