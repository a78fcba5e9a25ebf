package handlers

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"keeper/internal/dto"
	"keeper/internal/mapper"
	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/services"
	"keeper/internal/store"
)

func strPtr(s string) *string { return &s }

// fakeRepo is an in-memory Repository[models.AccountType] for exercising
// the full handler-service stack without a database.
type fakeRepo struct {
	rows   map[int64]*models.AccountType
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]*models.AccountType{}, nextID: 1}
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*models.AccountType, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ query.Pageable) iter.Seq2[*models.AccountType, error] {
	return func(yield func(*models.AccountType, error) bool) {
		for id := int64(1); id < r.nextID; id++ {
			if e, ok := r.rows[id]; ok {
				if !yield(e, nil) {
					return
				}
			}
		}
	}
}

func (r *fakeRepo) Save(_ context.Context, e *models.AccountType) (*models.AccountType, error) {
	if e.ID == 0 {
		e.ID = r.nextID
		r.nextID++
	} else if _, ok := r.rows[e.ID]; !ok {
		return nil, store.ErrNotFound
	}
	r.rows[e.ID] = e
	return e, nil
}

func (r *fakeRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeSearcher struct{}

func (fakeSearcher) Search(_ context.Context, _ string, _ query.Pageable) ([]*models.AccountType, error) {
	return nil, nil
}

func (fakeSearcher) Count(_ context.Context) (int64, error) { return 0, nil }

func newTestRouter(repo *fakeRepo) http.Handler {
	svc := services.New[models.AccountType, dto.AccountType]("account-types", repo, fakeSearcher{},
		mapper.AccountType{}, nil,
		func(e *models.AccountType) int64 { return e.ID })
	r := chi.NewRouter()
	Mount(r, "account-types", svc)
	return r
}

func TestResourceCreate(t *testing.T) {
	router := newTestRouter(newFakeRepo())
	req := httptest.NewRequest(http.MethodPost, "/account-types", strings.NewReader(`{"name":"Assets"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var d dto.AccountType
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.ID == nil || *d.ID != 1 || d.Name == nil || *d.Name != "Assets" {
		t.Fatalf("unexpected dto: %#v", d)
	}
}

func TestResourceCreateRejectsID(t *testing.T) {
	router := newTestRouter(newFakeRepo())
	req := httptest.NewRequest(http.MethodPost, "/account-types", strings.NewReader(`{"id":9,"name":"Assets"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResourceGetNotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())
	req := httptest.NewRequest(http.MethodGet, "/account-types/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResourceUpdateMismatch(t *testing.T) {
	repo := newFakeRepo()
	repo.rows[1] = &models.AccountType{ID: 1, Name: strPtr("Assets")}
	repo.nextID = 2
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/account-types/1", strings.NewReader(`{"id":2,"name":"Other"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResourcePatchMerges(t *testing.T) {
	repo := newFakeRepo()
	repo.rows[1] = &models.AccountType{ID: 1, Name: strPtr("Assets")}
	repo.nextID = 2
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/account-types/1", strings.NewReader(`{"name":"Fixed assets"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := repo.rows[1].Name; got == nil || *got != "Fixed assets" {
		t.Fatalf("patch not applied: %v", got)
	}
}

func TestResourceDeleteAndCount(t *testing.T) {
	repo := newFakeRepo()
	repo.rows[1] = &models.AccountType{ID: 1, Name: strPtr("Assets")}
	repo.nextID = 2
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/account-types/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/account-types/count", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Fatalf("count status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestResourceSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(newFakeRepo())
	req := httptest.NewRequest(http.MethodGet, "/_search/account-types", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestParsePageable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?page=2&size=25&sort=name,desc&sort=id", nil)
	p := parsePageable(req)
	if p.Page != 2 || p.Size != 25 {
		t.Fatalf("paging = %+v", p)
	}
	if len(p.Sort) != 2 || !p.Sort[0].Desc || p.Sort[0].Field != "name" || p.Sort[1].Desc {
		t.Fatalf("sort = %#v", p.Sort)
	}
}
