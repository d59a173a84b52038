// Package service implements the question bank facade
package service

import (
	"context"
	"strings"

	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"

	"panelgrid/internal/core/targeting"
	"panelgrid/internal/services/api/questions/domain"
	qrepo "panelgrid/internal/services/api/questions/repo"
)

// standardKeys is the fixed question set published to non-US panels.
// US panels get the full categorized bank instead
var standardKeys = []string{
	"AGE",
	"GENDER",
	"EMPLOYMENT",
	"RELATIONSHIP",
	"PARENTAL_STATUS",
	"INDUSTRY",
	"JOB_TITLE",
	"STANDARD_ELECTRONICS",
	"STANDARD_COMPANY_DEPARTMENT",
	"STANDARD_GAMING_DEVICE",
	"STANDARD_COMPANY_REVENUE",
	"STANDARD_B2B_DECISION_MAKER",
	"STANDARD_HOUSEHOLD_TYPE",
	"STANDARD_No_OF_EMPLOYEES",
}

// Service is the concrete implementation of domain.QuestionPort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[qrepo.Storage]
}

// New constructs a questions service
func New(db repokit.TxRunner, binder repokit.Binder[qrepo.Storage]) *Service {
	if db == nil {
		panic("questions.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("questions.Service requires a non-nil repo Binder")
	}
	return &Service{DB: db, Repo: binder}
}

var _ domain.QuestionPort = (*Service)(nil)

// ListByCountry publishes the screening questions for a country's panel
func (s *Service) ListByCountry(ctx context.Context, country string) ([]targeting.Question, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "country required")
	}

	st := s.Repo.Bind(repokit.PG(ctx, s.DB))

	var (
		bank []domain.BankQuestion
		err  error
	)
	if country == "US" {
		bank, err = st.CategorizedQuestions(ctx, country)
	} else {
		bank, err = st.QuestionsByKeys(ctx, standardKeys)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load question bank for %s", country)
	}
	if len(bank) == 0 {
		return nil, perr.NotFoundf("no questions available")
	}

	keys := make([]string, 0, len(bank))
	refs := make([]targeting.QuestionRef, 0, len(bank))
	for _, q := range bank {
		keys = append(keys, q.Key)
		refs = append(refs, targeting.QuestionRef{
			Key:        q.Key,
			Text:       q.Text,
			Type:       q.Type,
			CategoryID: q.CategoryID,
		})
	}

	doc, err := st.OptionsByKeys(ctx, keys)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load question options")
	}
	cats, err := st.Categories(ctx)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load question categories")
	}

	names := make(map[int64]string, len(cats))
	for id, c := range cats {
		names[id] = c.Name
	}
	langByKey := make(map[string]string, len(bank))
	for _, q := range bank {
		if c, ok := cats[q.CategoryID]; ok {
			langByKey[q.Key] = c.Language
		}
	}

	out := targeting.Normalize(refs, doc, names)
	if len(out) == 0 {
		return nil, perr.NotFoundf("no questions available")
	}
	// the category's survey language rides along on each of its questions
	for i := range out {
		out[i].Language = langByKey[out[i].Key]
	}
	return out, nil
}

// Answers publishes the options for one question key
func (s *Service) Answers(ctx context.Context, key string) ([]targeting.Option, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "question key required")
	}

	st := s.Repo.Bind(repokit.PG(ctx, s.DB))
	doc, err := st.OptionsByKeys(ctx, []string{key})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load answers for %s", key)
	}

	qs := targeting.Normalize([]targeting.QuestionRef{{Key: key}}, doc, nil)
	if len(qs) == 0 {
		return nil, domain.ErrNoAnswers
	}
	return qs[0].Options, nil
}
