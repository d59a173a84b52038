package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"
	"panelgrid/internal/platform/store"
	"panelgrid/internal/platform/testkit"

	"panelgrid/internal/core/pricing"
	"panelgrid/internal/core/targeting"
	"panelgrid/internal/services/api/supply/domain"
	"panelgrid/internal/services/api/supply/repo"
	"panelgrid/internal/services/api/supply/service"
)

// fakeDB satisfies the TxRunner seam; the fake storage never touches it
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (fakeDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeDB{})
}

// fakeStorage returns canned data per call; zero maps read as empty
type fakeStorage struct {
	assignments []domain.Assignment
	groups      map[int64]domain.GroupDetail
	languages   map[int64]string
	categories  map[int64]string
	jobCats     map[int64]string
	jobCatIDs   map[int64]int64
	policy      pricing.Policy
	adminFee    decimal.Decimal
	options     map[int64]targeting.OptionDoc
	quotas      map[int64]struct{}

	errAssignments error
	errGroups      error
	errPolicy      error

	gotChangedSince *time.Time
}

func (f *fakeStorage) ListAssignments(_ context.Context, _ string) ([]domain.Assignment, error) {
	return f.assignments, f.errAssignments
}

func (f *fakeStorage) GroupsByIDs(
	_ context.Context, _ []int64, since *time.Time,
) (map[int64]domain.GroupDetail, error) {
	f.gotChangedSince = since
	return f.groups, f.errGroups
}

func (f *fakeStorage) Languages(context.Context) (map[int64]string, error)     { return f.languages, nil }
func (f *fakeStorage) Categories(context.Context) (map[int64]string, error)    { return f.categories, nil }
func (f *fakeStorage) JobCategories(context.Context) (map[int64]string, error) { return f.jobCats, nil }

func (f *fakeStorage) JobCategoryIDs(_ context.Context, _ []int64) (map[int64]int64, error) {
	return f.jobCatIDs, nil
}

func (f *fakeStorage) CommissionPolicy(_ context.Context, _ string) (pricing.Policy, error) {
	return f.policy, f.errPolicy
}

func (f *fakeStorage) AdminFeePercent(_ context.Context, _ int64) (decimal.Decimal, error) {
	return f.adminFee, nil
}

func (f *fakeStorage) TargetingOptions(_ context.Context, _ []int64) (map[int64]targeting.OptionDoc, error) {
	return f.options, nil
}

func (f *fakeStorage) ActiveQuotaSurveyIDs(_ context.Context, _ []int64) (map[int64]struct{}, error) {
	return f.quotas, nil
}

func newSvc(st repo.Storage) *service.Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return service.New(fakeDB{}, binder, service.Config{SurveyBaseURL: "https://surveys.example.com/"})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func revSharePolicy() pricing.Policy {
	return pricing.Policy{
		IsRevenueShare:  true,
		RevSharePercent: dec("50"),
		CompanyID:       7,
	}
}

func baseGroup(sid int64) domain.GroupDetail {
	lang := int64(1)
	gt := 1
	return domain.GroupDetail{
		SurveyID:            sid,
		BaseCPI:             dec("10.00"),
		IncidenceRate:       35,
		LengthOfInterview:   15,
		Country:             "US",
		LanguageID:          &lang,
		DeviceCode:          6,
		GroupTypeCode:       &gt,
		CreatedAt:           time.Date(2026, 3, 2, 15, 15, 0, 0, time.UTC),
		ReContact:           false,
		EncodedSurveyNumber: "enc48231",
	}
}

func TestListLive_ResolvesFullGroup(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 100, SurveyID: 48231, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{48231: baseGroup(48231)},
		languages:   map[int64]string{1: "English"},
		jobCats:     map[int64]string{3: "Healthcare"},
		jobCatIDs:   map[int64]int64{100: 3},
		policy:      revSharePolicy(),
		quotas:      map[int64]struct{}{48231: {}},
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 group got %d", len(out))
	}

	g := out[0]
	if g.SurveyID != 48231 {
		t.Fatalf("surveyId: got %d", g.SurveyID)
	}
	if g.CPI != "5.00" {
		t.Fatalf("CPI: expected 5.00 got %q", g.CPI)
	}
	if g.Language != "English" || g.JobCategory != "Healthcare" {
		t.Fatalf("reference join: got lang %q cat %q", g.Language, g.JobCategory)
	}
	if g.GroupType != "Adhoc" || g.DeviceType != "All Devices" {
		t.Fatalf("labels: got %q %q", g.GroupType, g.DeviceType)
	}
	if !g.IsQuota {
		t.Fatal("expected quota flag set")
	}
	// 15:15 UTC is 07:15 Pacific in early March (PST)
	if g.CreatedDate != "2026-03-02 07:15:00" {
		t.Fatalf("createdDate: got %q", g.CreatedDate)
	}
	if g.ModifiedDate != "" {
		t.Fatalf("modifiedDate should be empty for zero time, got %q", g.ModifiedDate)
	}
}

func TestListLive_EntryLinks(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 100, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: baseGroup(1)},
		policy:      revSharePolicy(),
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLive := "https://surveys.example.com/startSurvey?survNum=enc48231&supCode=sup9&PID=[%%pid%%]"
	if out[0].EntryLink != wantLive {
		t.Fatalf("entryLink:\n got  %q\n want %q", out[0].EntryLink, wantLive)
	}
	if !strings.Contains(out[0].TestEntryLink, "Test=1&NotLive=1&") {
		t.Fatalf("testEntryLink missing test markers: %q", out[0].TestEntryLink)
	}
	if !strings.HasPrefix(out[0].TestEntryLink, "https://surveys.example.com/startSurvey?") {
		t.Fatalf("testEntryLink base: %q", out[0].TestEntryLink)
	}
}

func TestListLive_NoAssignments(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{policy: revSharePolicy()}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if !errors.Is(err, domain.ErrNoAssignments) {
		t.Fatalf("expected ErrNoAssignments got %v", err)
	}
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("expected not found code got %v", perr.CodeOf(err))
	}
}

func TestListLive_NoSurvivingDetail(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 100, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{},
		policy:      revSharePolicy(),
	}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if !errors.Is(err, domain.ErrNoMatchingDetail) {
		t.Fatalf("expected ErrNoMatchingDetail got %v", err)
	}
}

func TestListLive_ChangedSincePassesThrough(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 100, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: baseGroup(1)},
		policy:      revSharePolicy(),
	}
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9", ChangedSince: &since})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.gotChangedSince == nil || !st.gotChangedSince.Equal(since) {
		t.Fatalf("changed-since not forwarded: %v", st.gotChangedSince)
	}
}

func TestListLive_OrderFollowsAssignments(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{
			{GroupID: 1, SurveyID: 30, SupplierID: "sup9"},
			{GroupID: 2, SurveyID: 10, SupplierID: "sup9"},
			{GroupID: 3, SurveyID: 20, SupplierID: "sup9"},
		},
		groups: map[int64]domain.GroupDetail{
			10: baseGroup(10), 20: baseGroup(20), 30: baseGroup(30),
		},
		policy: revSharePolicy(),
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []int64
	for _, g := range out {
		got = append(got, g.SurveyID)
	}
	want := []int64{30, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v want %v", got, want)
		}
	}
}

func TestListLive_SkipsAssignmentsWithoutDetail(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{
			{GroupID: 1, SurveyID: 10, SupplierID: "sup9"},
			{GroupID: 2, SurveyID: 99, SupplierID: "sup9"}, // no detail row
		},
		groups: map[int64]domain.GroupDetail{10: baseGroup(10)},
		policy: revSharePolicy(),
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].SurveyID != 10 {
		t.Fatalf("expected only survey 10, got %+v", out)
	}
}

func TestListLive_AdminFeeApplied(t *testing.T) {
	t.Parallel()

	pol := revSharePolicy()
	pol.AdminFeeEnabled = true
	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: baseGroup(1)},
		policy:      pol,
		adminFee:    dec("10"),
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10.00 minus 10% fee is 9.00, half of that is 4.50
	if out[0].CPI != "4.50" {
		t.Fatalf("CPI with fee: expected 4.50 got %q", out[0].CPI)
	}
}

func TestListLive_TargetingNormalized(t *testing.T) {
	t.Parallel()

	start, end := 18, 24
	gd := baseGroup(1)
	gd.QuestionRefs = []targeting.QuestionRef{
		{Key: "AGE", Text: "What is your age?", Type: "range", CategoryID: 2},
		{Key: "GENDER", Text: "Gender?", Type: "single", CategoryID: 2},
		{Key: "UNANSWERED", Text: "Dropped?", Type: "single"},
	}
	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: gd},
		categories:  map[int64]string{2: "Demographics"},
		policy:      revSharePolicy(),
		options: map[int64]targeting.OptionDoc{
			1: {
				"AGE":    {{OptionID: 5, StartAge: &start, EndAge: &end}},
				"GENDER": {{OptionID: 1, OptionText: "Female"}},
			},
		},
	}
	out, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tg := out[0].Targeting
	if len(tg) != 2 {
		t.Fatalf("expected 2 questions got %d", len(tg))
	}
	if tg[0].Key != "AGE" || tg[0].Options[0].AgeStart == nil || *tg[0].Options[0].AgeStart != 18 {
		t.Fatalf("age question malformed: %+v", tg[0])
	}
	if tg[0].Category != "Demographics" {
		t.Fatalf("category name: got %q", tg[0].Category)
	}
	if tg[1].Options[0].OptionText != "Female" {
		t.Fatalf("text option malformed: %+v", tg[1])
	}
}

func TestListLive_InvalidPolicySurfaces(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: baseGroup(1)},
		policy:      pricing.Policy{IsRevenueShare: false}, // flat mode, no flat rate
	}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if perr.CodeOf(err) != perr.ErrorCodePolicy {
		t.Fatalf("expected policy code got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestListLive_UpstreamFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{errAssignments: errors.New("conn refused")}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable got %v", perr.CodeOf(err))
	}
}

func TestListLive_ReferenceFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		errGroups:   errors.New("timeout"),
		policy:      revSharePolicy(),
	}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable got %v", perr.CodeOf(err))
	}
}

func TestListLive_ClassifiedDBFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	// errors arriving already classified as database faults still count
	// as a collaborator being down, not a server bug
	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		errGroups:   perr.Newf(perr.ErrorCodeDB, "connection reset"),
		policy:      revSharePolicy(),
	}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestListLive_MissingCommissionStaysNotFound(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{
		assignments: []domain.Assignment{{GroupID: 1, SurveyID: 1, SupplierID: "sup9"}},
		groups:      map[int64]domain.GroupDetail{1: baseGroup(1)},
		errPolicy:   perr.ErrNotFound,
	}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{SupplierID: "sup9"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("expected not found got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestListLive_MissingSupplier(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{policy: revSharePolicy()}
	_, err := newSvc(st).ListLive(context.Background(), domain.ListInput{})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument got %v", perr.CodeOf(err))
	}
}

func TestNew_PanicsOnNilDeps(t *testing.T) {
	t.Parallel()

	binder := repo.NewPG()
	testkit.MustPanic(t, func() { service.New(nil, binder, service.Config{}) })
	testkit.MustPanic(t, func() { service.New(fakeDB{}, nil, service.Config{}) })
}
