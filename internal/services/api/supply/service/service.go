// Package service implements the supply catalog facade
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"
	"panelgrid/internal/platform/logger"
	ptime "panelgrid/internal/platform/time"

	"panelgrid/internal/core/labels"
	"panelgrid/internal/core/pricing"
	"panelgrid/internal/core/targeting"
	"panelgrid/internal/services/api/supply/domain"
	srepo "panelgrid/internal/services/api/supply/repo"
)

// Config carries the service level knobs
type Config struct {
	// SurveyBaseURL is the respondent-facing survey host, no trailing slash
	SurveyBaseURL string

	// Timeout bounds the whole resolve pipeline; zero disables the bound
	Timeout time.Duration
}

// Service is the concrete implementation of domain.CatalogPort
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[srepo.Storage]
	Cfg  Config
}

// New constructs a supply service
func New(db repokit.TxRunner, binder repokit.Binder[srepo.Storage], cfg Config) *Service {
	if db == nil {
		panic("supply.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("supply.Service requires a non-nil repo Binder")
	}
	cfg.SurveyBaseURL = strings.TrimRight(cfg.SurveyBaseURL, "/")
	return &Service{DB: db, Repo: binder, Cfg: cfg}
}

var _ domain.CatalogPort = (*Service)(nil)

// refSet bundles everything the assembler joins against, loaded
// concurrently once the assignment list is known
type refSet struct {
	groups     map[int64]domain.GroupDetail
	languages  map[int64]string
	categories map[int64]string
	jobCats    map[int64]string
	jobCatIDs  map[int64]int64
	options    map[int64]targeting.OptionDoc
	quotas     map[int64]struct{}
	policy     pricing.Policy
	adminFee   decimal.Decimal
}

// ListLive resolves the supplier's live catalog end to end
func (s *Service) ListLive(ctx context.Context, in domain.ListInput) ([]domain.ResolvedGroup, error) {
	if strings.TrimSpace(in.SupplierID) == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "supplier id required")
	}
	if s.Cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Cfg.Timeout)
		defer cancel()
	}

	st := s.Repo.Bind(repokit.PG(ctx, s.DB))

	asgs, err := st.ListAssignments(ctx, in.SupplierID)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "list assignments for supplier %s", in.SupplierID)
	}
	if len(asgs) == 0 {
		return nil, domain.ErrNoAssignments
	}

	surveyIDs, jobIDs := dedupeIDs(asgs)

	refs, err := s.loadRefs(ctx, st, in, surveyIDs, jobIDs)
	if err != nil {
		return nil, err
	}
	if err := refs.policy.Validate(); err != nil {
		return nil, err
	}

	out := assemble(asgs, surveyIDs, refs, s.Cfg.SurveyBaseURL)
	if len(out) == 0 {
		return nil, domain.ErrNoMatchingDetail
	}

	logger.C(ctx).Debug().
		Str("supplier", in.SupplierID).
		Int("assignments", len(asgs)).
		Int("resolved", len(out)).
		Msg("catalog resolved")
	return out, nil
}

// loadRefs fans the independent reads out on one errgroup. The storage
// binder sits on a pooled querier so concurrent use is safe
func (s *Service) loadRefs(
	ctx context.Context,
	st srepo.Storage,
	in domain.ListInput,
	surveyIDs, jobIDs []int64,
) (*refSet, error) {
	refs := &refSet{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		refs.groups, err = st.GroupsByIDs(gctx, surveyIDs, in.ChangedSince)
		return err
	})
	g.Go(func() (err error) {
		refs.languages, err = st.Languages(gctx)
		return err
	})
	g.Go(func() (err error) {
		refs.categories, err = st.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		refs.jobCats, err = st.JobCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		refs.jobCatIDs, err = st.JobCategoryIDs(gctx, jobIDs)
		return err
	})
	g.Go(func() (err error) {
		refs.options, err = st.TargetingOptions(gctx, surveyIDs)
		return err
	})
	g.Go(func() (err error) {
		refs.quotas, err = st.ActiveQuotaSurveyIDs(gctx, surveyIDs)
		return err
	})
	g.Go(func() error {
		pol, err := st.CommissionPolicy(gctx, in.SupplierID)
		if err != nil {
			return err
		}
		refs.policy = pol
		// the fee only matters when the policy says to charge it
		if pol.AdminFeeEnabled {
			refs.adminFee, err = st.AdminFeePercent(gctx, pol.CompanyID)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		switch perr.CodeOf(err) {
		case perr.ErrorCodeUnknown, perr.ErrorCodeDB:
			// collaborator faults, classified or not, surface as unavailable
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load catalog references")
		default:
			return nil, err
		}
	}
	return refs, nil
}

// dedupeIDs collapses the assignment list into survey ids in first-seen
// order plus the unique job ids backing them
func dedupeIDs(asgs []domain.Assignment) (surveyIDs, jobIDs []int64) {
	seenSurvey := make(map[int64]struct{}, len(asgs))
	seenJob := make(map[int64]struct{}, len(asgs))
	for _, a := range asgs {
		if _, ok := seenSurvey[a.SurveyID]; !ok {
			seenSurvey[a.SurveyID] = struct{}{}
			surveyIDs = append(surveyIDs, a.SurveyID)
		}
		if _, ok := seenJob[a.GroupID]; !ok {
			seenJob[a.GroupID] = struct{}{}
			jobIDs = append(jobIDs, a.GroupID)
		}
	}
	return surveyIDs, jobIDs
}

// assemble joins everything into published groups, one per assignment,
// ordered by the deduplicated survey id order of the assignment list.
// Assignments whose survey has no surviving group detail are skipped
func assemble(asgs []domain.Assignment, surveyIDs []int64, refs *refSet, baseURL string) []domain.ResolvedGroup {
	bySurvey := make(map[int64][]domain.Assignment, len(surveyIDs))
	for _, a := range asgs {
		bySurvey[a.SurveyID] = append(bySurvey[a.SurveyID], a)
	}

	out := make([]domain.ResolvedGroup, 0, len(asgs))
	for _, sid := range surveyIDs {
		gd, ok := refs.groups[sid]
		if !ok {
			continue
		}
		for _, a := range bySurvey[sid] {
			out = append(out, resolveOne(a, gd, refs, baseURL))
		}
	}
	return out
}

func resolveOne(a domain.Assignment, gd domain.GroupDetail, refs *refSet, baseURL string) domain.ResolvedGroup {
	rg := domain.ResolvedGroup{
		SurveyID:     gd.SurveyID,
		CPI:          pricing.Money(pricing.ComputeCPI(gd.BaseCPI, refs.policy, refs.adminFee)),
		LOI:          gd.LengthOfInterview,
		IR:           gd.IncidenceRate,
		Country:      gd.Country,
		GroupType:    labels.GroupType(gd.GroupTypeCode),
		DeviceType:   labels.DeviceType(gd.DeviceCode),
		CreatedDate:  ptime.FormatPacific(gd.CreatedAt),
		ModifiedDate: ptime.FormatPacific(gd.ModifiedAt),
		ReContact:    gd.ReContact,
		Targeting:    targeting.Normalize(gd.QuestionRefs, refs.options[gd.SurveyID], refs.categories),
	}
	if gd.LanguageID != nil {
		rg.Language = refs.languages[*gd.LanguageID]
	}
	if catID, ok := refs.jobCatIDs[a.GroupID]; ok {
		rg.JobCategory = refs.jobCats[catID]
	}
	_, rg.IsQuota = refs.quotas[gd.SurveyID]
	rg.EntryLink, rg.TestEntryLink = entryLinks(baseURL, gd.EncodedSurveyNumber, a.SupplierID)
	return rg
}

// entryLinks builds the live and test respondent entry URLs. The PID
// placeholder is substituted by the supplier at send time, so it is
// emitted literally
func entryLinks(baseURL, encodedNum, supplierID string) (live, test string) {
	live = fmt.Sprintf("%s/startSurvey?survNum=%s&supCode=%s&PID=[%%%%pid%%%%]", baseURL, encodedNum, supplierID)
	test = fmt.Sprintf("%s/startSurvey?Test=1&NotLive=1&survNum=%s&supCode=%s&PID=[%%%%pid%%%%]",
		baseURL, encodedNum, supplierID)
	return live, test
}
