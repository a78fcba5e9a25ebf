package services

import (
	"context"
	"errors"
	"iter"
	"testing"

	"keeper/internal/dto"
	"keeper/internal/mapper"
	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/store"
)

func strPtr(s string) *string { return &s }

func intPtr(n int64) *int64 { return &n }

type stubRepo struct {
	findFn   func(ctx context.Context, id int64) (*models.AccountType, error)
	saveFn   func(ctx context.Context, e *models.AccountType) (*models.AccountType, error)
	deleteFn func(ctx context.Context, id int64) error
	all      []*models.AccountType
	allErr   error
	count    int64
}

func (r *stubRepo) FindByID(ctx context.Context, id int64) (*models.AccountType, error) {
	if r.findFn == nil {
		return nil, store.ErrNotFound
	}
	return r.findFn(ctx, id)
}

func (r *stubRepo) FindAll(_ context.Context, _ query.Pageable) iter.Seq2[*models.AccountType, error] {
	return func(yield func(*models.AccountType, error) bool) {
		for _, e := range r.all {
			if !yield(e, nil) {
				return
			}
		}
		if r.allErr != nil {
			yield(nil, r.allErr)
		}
	}
}

func (r *stubRepo) Save(ctx context.Context, e *models.AccountType) (*models.AccountType, error) {
	if r.saveFn == nil {
		return e, nil
	}
	return r.saveFn(ctx, e)
}

func (r *stubRepo) DeleteByID(ctx context.Context, id int64) error {
	if r.deleteFn == nil {
		return nil
	}
	return r.deleteFn(ctx, id)
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) {
	return r.count, nil
}

type stubSearcher struct {
	hits  []*models.AccountType
	err   error
	count int64
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ query.Pageable) ([]*models.AccountType, error) {
	return s.hits, s.err
}

func (s *stubSearcher) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

type stubPublisher struct {
	events []string
	ids    []int64
}

func (p *stubPublisher) BroadcastChange(entity string, id int64, action string) {
	p.events = append(p.events, entity+":"+action)
	p.ids = append(p.ids, id)
}

func newTestService(repo *stubRepo, search *stubSearcher, pub *stubPublisher) *Service[models.AccountType, dto.AccountType] {
	return New[models.AccountType, dto.AccountType]("account-types", repo, search,
		mapper.AccountType{}, pub,
		func(e *models.AccountType) int64 { return e.ID })
}

func TestServiceCreateAssignsID(t *testing.T) {
	repo := &stubRepo{
		saveFn: func(_ context.Context, e *models.AccountType) (*models.AccountType, error) {
			if e.ID != 0 {
				t.Fatalf("create must pass a fresh entity, got id %d", e.ID)
			}
			e.ID = 7
			return e, nil
		},
	}
	pub := &stubPublisher{}
	svc := newTestService(repo, &stubSearcher{}, pub)

	d, err := svc.Create(context.Background(), &dto.AccountType{Name: strPtr("Assets")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == nil || *d.ID != 7 {
		t.Fatalf("dto id = %v", d.ID)
	}
	if len(pub.events) != 1 || pub.events[0] != "account-types:created" || pub.ids[0] != 7 {
		t.Fatalf("unexpected events: %#v %#v", pub.events, pub.ids)
	}
}

func TestServiceCreateRejectsPresetID(t *testing.T) {
	called := false
	repo := &stubRepo{
		saveFn: func(_ context.Context, e *models.AccountType) (*models.AccountType, error) {
			called = true
			return e, nil
		},
	}
	svc := newTestService(repo, &stubSearcher{}, &stubPublisher{})

	_, err := svc.Create(context.Background(), &dto.AccountType{ID: intPtr(7)})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if called {
		t.Fatal("repo must not be touched on a rejected create")
	}
}

func TestServiceUpdateIDMismatch(t *testing.T) {
	svc := newTestService(&stubRepo{}, &stubSearcher{}, &stubPublisher{})
	_, err := svc.Update(context.Background(), 7, &dto.AccountType{ID: intPtr(8)})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 7, &dto.AccountType{}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for missing id, got %v", err)
	}
}

func TestServicePartialUpdateMerges(t *testing.T) {
	repo := &stubRepo{
		findFn: func(_ context.Context, id int64) (*models.AccountType, error) {
			return &models.AccountType{ID: id, Name: strPtr("Assets")}, nil
		},
		saveFn: func(_ context.Context, e *models.AccountType) (*models.AccountType, error) {
			if e.Name == nil || *e.Name != "Fixed assets" {
				t.Fatalf("overlay not applied before save: %#v", e.Name)
			}
			return e, nil
		},
	}
	svc := newTestService(repo, &stubSearcher{}, &stubPublisher{})

	d, err := svc.PartialUpdate(context.Background(), 7, &dto.AccountType{Name: strPtr("Fixed assets")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *d.Name != "Fixed assets" {
		t.Fatalf("dto name = %v", *d.Name)
	}
}

func TestServicePartialUpdateUnknownID(t *testing.T) {
	svc := newTestService(&stubRepo{}, &stubSearcher{}, &stubPublisher{})
	_, err := svc.PartialUpdate(context.Background(), 99, &dto.AccountType{Name: strPtr("x")})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceAbsorbsIndexSyncError(t *testing.T) {
	repo := &stubRepo{
		saveFn: func(_ context.Context, e *models.AccountType) (*models.AccountType, error) {
			e.ID = 7
			return e, &store.IndexSyncError{Entity: "account type", ID: 7, Op: "upsert", Err: errors.New("index down")}
		},
	}
	pub := &stubPublisher{}
	svc := newTestService(repo, &stubSearcher{}, pub)

	d, err := svc.Create(context.Background(), &dto.AccountType{Name: strPtr("Assets")})
	if err != nil {
		t.Fatalf("index drift must not fail the write, got %v", err)
	}
	if d.ID == nil || *d.ID != 7 {
		t.Fatalf("dto id = %v", d.ID)
	}
	if len(pub.events) != 1 {
		t.Fatal("change event must still go out")
	}
}

func TestServiceDelete(t *testing.T) {
	pub := &stubPublisher{}
	repo := &stubRepo{
		deleteFn: func(_ context.Context, id int64) error {
			return &store.IndexSyncError{Entity: "account type", ID: id, Op: "delete", Err: errors.New("index down")}
		},
	}
	svc := newTestService(repo, &stubSearcher{}, pub)
	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("index drift must not fail the delete, got %v", err)
	}
	if len(pub.events) != 1 || pub.events[0] != "account-types:deleted" {
		t.Fatalf("unexpected events: %#v", pub.events)
	}

	repo.deleteFn = func(_ context.Context, _ int64) error { return store.ErrNotFound }
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceFindAllCollects(t *testing.T) {
	repo := &stubRepo{all: []*models.AccountType{
		{ID: 1, Name: strPtr("Assets")},
		{ID: 2, Name: strPtr("Liabilities")},
	}}
	svc := newTestService(repo, &stubSearcher{}, &stubPublisher{})
	out, err := svc.FindAll(context.Background(), query.Pageable{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || *out[1].Name != "Liabilities" {
		t.Fatalf("unexpected dtos: %#v", out)
	}

	repo.allErr = errors.New("boom")
	if _, err := svc.FindAll(context.Background(), query.Pageable{}); err == nil {
		t.Fatal("iterator error must propagate")
	}
}

func TestServiceSearchMapsHits(t *testing.T) {
	search := &stubSearcher{hits: []*models.AccountType{{ID: 1, Name: strPtr("Assets")}}, count: 1}
	svc := newTestService(&stubRepo{}, search, &stubPublisher{})
	out, err := svc.Search(context.Background(), "assets", query.Pageable{})
	if err != nil || len(out) != 1 || *out[0].Name != "Assets" {
		t.Fatalf("unexpected result: %#v, %v", out, err)
	}
	if n, _ := svc.SearchCount(context.Background()); n != 1 {
		t.Fatalf("search count = %d", n)
	}
}
