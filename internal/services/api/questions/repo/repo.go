// Package repo provides the storage repository implementation for the questions service
package repo

import (
	"context"

	"panelgrid/internal/modkit/repokit"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/core/targeting"
	"panelgrid/internal/services/api/questions/domain"
)

// Storage defines the storage repository interface for the questions service
type Storage interface {
	// CategorizedQuestions returns every bank question that belongs to one
	// of the country's categories, in category then position order
	CategorizedQuestions(ctx context.Context, country string) ([]domain.BankQuestion, error)

	// QuestionsByKeys returns bank questions for the given keys, in the
	// order the keys were requested
	QuestionsByKeys(ctx context.Context, keys []string) ([]domain.BankQuestion, error)

	// Categories returns category names and languages keyed by id
	Categories(ctx context.Context) (map[int64]domain.Category, error)

	// OptionsByKeys returns the raw option lists keyed by question key
	OptionsByKeys(ctx context.Context, keys []string) (targeting.OptionDoc, error)
}

// NewPG constructs a Postgres storage binder
func NewPG() repokit.Binder[Storage] {
	return repokit.BindFunc[Storage](func(q repokit.Queryer) Storage { return &pgStore{q: q} })
}

type pgStore struct{ q repokit.Queryer }

func (s *pgStore) CategorizedQuestions(ctx context.Context, country string) ([]domain.BankQuestion, error) {
	const sql = `
		SELECT q.key, q.text, q.qtype, q.category_id
		FROM bank_questions q
		JOIN question_categories c ON c.id = q.category_id
		WHERE c.country = $1
		ORDER BY c.position, q.position
	`
	return store.Many(ctx, s.q, scanBankQuestion, sql, country)
}

func (s *pgStore) QuestionsByKeys(ctx context.Context, keys []string) ([]domain.BankQuestion, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	// array_position keeps the caller's key order
	const sql = `
		SELECT key, text, qtype, COALESCE(category_id, 0)
		FROM bank_questions
		WHERE key = ANY($1)
		ORDER BY array_position($1, key)
	`
	return store.Many(ctx, s.q, scanBankQuestion, sql, keys)
}

func (s *pgStore) Categories(ctx context.Context) (map[int64]domain.Category, error) {
	const sql = `SELECT id, name, COALESCE(language, '') FROM question_categories`
	type row struct {
		id  int64
		cat domain.Category
	}
	rows, err := store.Many(ctx, s.q, func(r store.Row) (row, error) {
		var rr row
		if err := r.Scan(&rr.id, &rr.cat.Name, &rr.cat.Language); err != nil {
			return row{}, err
		}
		return rr, nil
	}, sql)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.Category, len(rows))
	for _, rr := range rows {
		out[rr.id] = rr.cat
	}
	return out, nil
}

func (s *pgStore) OptionsByKeys(ctx context.Context, keys []string) (targeting.OptionDoc, error) {
	if len(keys) == 0 {
		return targeting.OptionDoc{}, nil
	}
	const sql = `
		SELECT question_key, opt_id, COALESCE(opt_txt, ''), start_age, end_age
		FROM bank_question_options
		WHERE question_key = ANY($1)
		ORDER BY question_key, position
	`
	type row struct {
		key string
		opt targeting.RawOption
	}
	rows, err := store.Many(ctx, s.q, func(r store.Row) (row, error) {
		var rr row
		if err := r.Scan(&rr.key, &rr.opt.OptionID, &rr.opt.OptionText, &rr.opt.StartAge, &rr.opt.EndAge); err != nil {
			return row{}, err
		}
		return rr, nil
	}, sql, keys)
	if err != nil {
		return nil, err
	}
	doc := make(targeting.OptionDoc, len(keys))
	for _, rr := range rows {
		doc[rr.key] = append(doc[rr.key], rr.opt)
	}
	return doc, nil
}

func scanBankQuestion(r store.Row) (domain.BankQuestion, error) {
	var q domain.BankQuestion
	if err := r.Scan(&q.Key, &q.Text, &q.Type, &q.CategoryID); err != nil {
		return domain.BankQuestion{}, err
	}
	return q, nil
}
