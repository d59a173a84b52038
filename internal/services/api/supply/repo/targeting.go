package repo

import (
	"context"
	"encoding/json"

	perr "panelgrid/internal/platform/errors"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/core/targeting"
)

// TargetingOptions loads the raw option document per assigned survey.
// Surveys with no stored document are absent from the map
func (s *pgStore) TargetingOptions(ctx context.Context, surveyIDs []int64) (map[int64]targeting.OptionDoc, error) {
	if len(surveyIDs) == 0 {
		return map[int64]targeting.OptionDoc{}, nil
	}
	const sql = `
		SELECT survey_id, options
		FROM survey_targeting
		WHERE survey_id = ANY($1)
	`
	type row struct {
		id  int64
		doc []byte
	}
	rows, err := store.Many(ctx, s.q, func(r store.Row) (row, error) {
		var rr row
		if err := r.Scan(&rr.id, &rr.doc); err != nil {
			return row{}, err
		}
		return rr, nil
	}, sql, surveyIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]targeting.OptionDoc, len(rows))
	for _, rr := range rows {
		var doc targeting.OptionDoc
		if err := json.Unmarshal(rr.doc, &doc); err != nil {
			return nil, perr.JSONErrf("decode targeting for survey %d: %v", rr.id, err)
		}
		out[rr.id] = doc
	}
	return out, nil
}
