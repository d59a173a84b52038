package repo

import (
	"context"

	"panelgrid/internal/platform/store"
)

// Reference tables are small and read whole; the service caches nothing
// because the surrounding request already fans these out concurrently.

func (s *pgStore) Languages(ctx context.Context) (map[int64]string, error) {
	return s.idNameMap(ctx, `SELECT id, name FROM languages`)
}

func (s *pgStore) Categories(ctx context.Context) (map[int64]string, error) {
	return s.idNameMap(ctx, `SELECT id, name FROM question_categories`)
}

func (s *pgStore) JobCategories(ctx context.Context) (map[int64]string, error) {
	return s.idNameMap(ctx, `SELECT id, name FROM job_categories`)
}

// JobCategoryIDs maps job ids to category ids; uncategorized jobs are omitted
func (s *pgStore) JobCategoryIDs(ctx context.Context, jobIDs []int64) (map[int64]int64, error) {
	if len(jobIDs) == 0 {
		return map[int64]int64{}, nil
	}
	const sql = `
		SELECT id, category_id
		FROM jobs
		WHERE id = ANY($1)
		  AND category_id IS NOT NULL
	`
	type pair struct{ id, cat int64 }
	rows, err := store.Many(ctx, s.q, func(r store.Row) (pair, error) {
		var p pair
		if err := r.Scan(&p.id, &p.cat); err != nil {
			return pair{}, err
		}
		return p, nil
	}, sql, jobIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]int64, len(rows))
	for _, p := range rows {
		out[p.id] = p.cat
	}
	return out, nil
}

func (s *pgStore) idNameMap(ctx context.Context, sql string) (map[int64]string, error) {
	type pair struct {
		id   int64
		name string
	}
	rows, err := store.Many(ctx, s.q, func(r store.Row) (pair, error) {
		var p pair
		if err := r.Scan(&p.id, &p.name); err != nil {
			return pair{}, err
		}
		return p, nil
	}, sql)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(rows))
	for _, p := range rows {
		out[p.id] = p.name
	}
	return out, nil
}
