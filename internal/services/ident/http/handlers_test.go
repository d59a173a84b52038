package http_test

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"panelgrid/internal/modkit/httpkit"
	"panelgrid/internal/modkit/repokit"
	perr "panelgrid/internal/platform/errors"
	phttp "panelgrid/internal/platform/net/http"
	"panelgrid/internal/platform/store"

	"panelgrid/internal/services/ident/domain"
	identhttp "panelgrid/internal/services/ident/http"
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

// mount wires the issuance routes behind the admin guard the way the
// module does
func mount(st *fakeStorage, adminToken string) stdhttp.Handler {
	binder := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	svc := service.New(fakeDB{}, binder)

	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/ident", func(rr phttp.Router) {
		rr.Use(httpkit.AdminGuard(adminToken))
		identhttp.Register(rr, svc)
	})
	return m
}

func postKeys(t *testing.T, h stdhttp.Handler, body, adminToken string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodPost, "/ident/keys", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if adminToken != "" {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestIssueKey_MintsAndStoresDigestOnly(t *testing.T) {
	t.Parallel()

	st := &fakeStorage{}
	rr := postKeys(t, mount(st, "s3cret"), `{"supplier_id":"sup9"}`, "s3cret")

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d body %s", rr.Code, rr.Body)
	}
	var env struct {
		Data struct {
			SupplierID string `json:"supplier_id"`
			APIKey     string `json:"api_key"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.SupplierID != "sup9" || env.Data.APIKey == "" {
		t.Fatalf("response: %+v", env.Data)
	}
	if _, ok := st.keys[env.Data.APIKey]; ok {
		t.Fatal("raw token must not be stored")
	}
	if st.keys[domain.TokenDigest(env.Data.APIKey)] != "sup9" {
		t.Fatal("digest not stored for supplier")
	}
}

func TestIssueKey_RejectsMissingSupplier(t *testing.T) {
	t.Parallel()

	rr := postKeys(t, mount(&fakeStorage{}, "s3cret"), `{}`, "s3cret")
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status: %d body %s", rr.Code, rr.Body)
	}
}

func TestIssueKey_RequiresAdminToken(t *testing.T) {
	t.Parallel()

	h := mount(&fakeStorage{}, "s3cret")

	if rr := postKeys(t, h, `{"supplier_id":"sup9"}`, ""); rr.Code != stdhttp.StatusForbidden {
		t.Fatalf("missing token status: %d", rr.Code)
	}
	if rr := postKeys(t, h, `{"supplier_id":"sup9"}`, "wrong"); rr.Code != stdhttp.StatusForbidden {
		t.Fatalf("wrong token status: %d", rr.Code)
	}
}

func TestIssueKey_ClosedWhenUnconfigured(t *testing.T) {
	t.Parallel()

	// no admin token configured: nothing gets in, not even a blank header
	rr := postKeys(t, mount(&fakeStorage{}, ""), `{"supplier_id":"sup9"}`, "")
	if rr.Code != stdhttp.StatusForbidden {
		t.Fatalf("status: %d", rr.Code)
	}
}
