package repo

import (
	"context"
	"encoding/json"
	"time"

	perr "panelgrid/internal/platform/errors"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/services/api/supply/domain"
)

// GroupsByIDs joins group detail for the assigned surveys. Missing survey
// ids are simply absent from the map; the caller decides what that means
func (s *pgStore) GroupsByIDs(
	ctx context.Context,
	surveyIDs []int64,
	changedSince *time.Time,
) (map[int64]domain.GroupDetail, error) {
	if len(surveyIDs) == 0 {
		return map[int64]domain.GroupDetail{}, nil
	}

	sql := `
		SELECT survey_id, base_cpi, incidence_rate, length_of_interview,
		       country, language_id, device_code, group_type_code,
		       created_at, modified_at, recontact, survey_num_enc,
		       COALESCE(question_refs, '[]'::jsonb)
		FROM survey_groups
		WHERE survey_id = ANY($1)
		  AND live
	`
	args := []any{surveyIDs}
	if changedSince != nil {
		// Either edited or newly created after the cutoff counts as changed;
		// modified_at is NULL until the first edit, so created_at must be
		// checked on its own.
		sql += ` AND (modified_at > $2 OR created_at > $2)`
		args = append(args, *changedSince)
	}

	rows, err := store.Many(ctx, s.q, scanGroupDetail, sql, args...)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.GroupDetail, len(rows))
	for _, g := range rows {
		out[g.SurveyID] = g
	}
	return out, nil
}

func scanGroupDetail(r store.Row) (domain.GroupDetail, error) {
	var (
		g        domain.GroupDetail
		created  *time.Time
		modified *time.Time
		refs     []byte
	)
	if err := r.Scan(
		&g.SurveyID, &g.BaseCPI, &g.IncidenceRate, &g.LengthOfInterview,
		&g.Country, &g.LanguageID, &g.DeviceCode, &g.GroupTypeCode,
		&created, &modified, &g.ReContact, &g.EncodedSurveyNumber,
		&refs,
	); err != nil {
		return domain.GroupDetail{}, err
	}
	if created != nil {
		g.CreatedAt = *created
	}
	if modified != nil {
		g.ModifiedAt = *modified
	}
	if err := json.Unmarshal(refs, &g.QuestionRefs); err != nil {
		return domain.GroupDetail{}, perr.JSONErrf("decode question refs for survey %d: %v", g.SurveyID, err)
	}
	return g, nil
}
