package service_test

import (
	"context"
	"testing"

	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/services/ident/domain"
	"panelgrid/internal/services/ident/repo"
	"panelgrid/internal/services/ident/service"
)

type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (fakeDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeDB{})
}

// fakeStorage keeps issued digests in memory
type fakeStorage struct {
	keys map[string]string // digest -> supplier id
}

func (f *fakeStorage) SupplierIDByDigest(_ context.Context, digest string) (string, error) {
	if sid, ok := f.keys[digest]; ok {
		return sid, nil
	}
	return "", perr.ErrNotFound
}

func (f *fakeStorage) InsertKey(_ context.Context, supplierID, digest string) error {
	if f.keys == nil {
		f.keys = map[string]string{}
	}
	f.keys[digest] = supplierID
	return nil
}

func newSvc(st repo.Storage) *service.Service {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return service.New(fakeDB{}, binder)
}

func TestIssueKeyThenVerify(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{}
	svc := newSvc(st)

	token, err := svc.IssueKey(context.Background(), "sup9")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a raw token")
	}
	// raw token never stored
	if _, ok := st.keys[token]; ok {
		t.Fatal("raw token leaked into storage")
	}
	if _, ok := st.keys[domain.TokenDigest(token)]; !ok {
		t.Fatal("digest not stored")
	}

	sid, err := svc.SupplierForToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sid != "sup9" {
		t.Fatalf("supplier: got %q", sid)
	}
}

func TestSupplierForToken_Unknown(t *testing.T) {
	t.Parallel()

	_, err := newSvc(&fakeStorage{}).SupplierForToken(context.Background(), "nope")
	if perr.CodeOf(err) != perr.ErrorCodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
}

func TestIssueKeysAreUnique(t *testing.T) {
	t.Parallel()

	svc := newSvc(&fakeStorage{})
	a, err := svc.IssueKey(context.Background(), "sup9")
	if err != nil {
		t.Fatalf("issue a: %v", err)
	}
	b, err := svc.IssueKey(context.Background(), "sup9")
	if err != nil {
		t.Fatalf("issue b: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
}
