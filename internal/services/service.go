// Package services holds the transport-agnostic entity operations. Each
// service wraps a relational repository, a search adapter, and a mapper,
// and publishes a change event after every successful write.
package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"

	"keeper/internal/query"
	"keeper/internal/store"
)

var ErrBadRequest = errors.New("bad request")

// Repository is the relational side of an entity. Reads come back with
// their eager relations already attached.
type Repository[E any] interface {
	FindByID(ctx context.Context, id int64) (*E, error)
	FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*E, error]
	Save(ctx context.Context, e *E) (*E, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Searcher is the full-text side. Results are rehydrated from the index,
// never fetched back from Postgres.
type Searcher[E any] interface {
	Search(ctx context.Context, q string, p query.Pageable) ([]*E, error)
	Count(ctx context.Context) (int64, error)
}

type Mapper[E, D any] interface {
	ToEntity(*D) *E
	ToDto(*E) *D
	PartialUpdate(*E, *D)
	DtoID(*D) *int64
}

// Publisher receives change notifications after successful writes.
type Publisher interface {
	BroadcastChange(entity string, id int64, action string)
}

type Service[E, D any] struct {
	name   string
	repo   Repository[E]
	search Searcher[E]
	mapper Mapper[E, D]
	pub    Publisher
	id     func(*E) int64
}

func New[E, D any](name string, repo Repository[E], search Searcher[E], m Mapper[E, D], pub Publisher, id func(*E) int64) *Service[E, D] {
	return &Service[E, D]{name: name, repo: repo, search: search, mapper: m, pub: pub, id: id}
}

// save runs the repository write and absorbs an index sync failure. The
// relational write already succeeded at that point, so the result stands
// and the index drifts until the next write or a reindex.
func (s *Service[E, D]) save(ctx context.Context, e *E, action string) (*D, error) {
	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		var sync *store.IndexSyncError
		if !errors.As(err, &sync) {
			return nil, err
		}
		log.Printf("services: %v", sync)
	}
	if s.pub != nil {
		s.pub.BroadcastChange(s.name, s.id(saved), action)
	}
	return s.mapper.ToDto(saved), nil
}

func (s *Service[E, D]) Create(ctx context.Context, d *D) (*D, error) {
	if s.mapper.DtoID(d) != nil {
		return nil, fmt.Errorf("%w: a new %s cannot already have an id", ErrBadRequest, s.name)
	}
	return s.save(ctx, s.mapper.ToEntity(d), "created")
}

func (s *Service[E, D]) Update(ctx context.Context, id int64, d *D) (*D, error) {
	dtoID := s.mapper.DtoID(d)
	if dtoID == nil {
		return nil, fmt.Errorf("%w: %s id is required", ErrBadRequest, s.name)
	}
	if *dtoID != id {
		return nil, fmt.Errorf("%w: %s id mismatch", ErrBadRequest, s.name)
	}
	return s.save(ctx, s.mapper.ToEntity(d), "updated")
}

func (s *Service[E, D]) PartialUpdate(ctx context.Context, id int64, d *D) (*D, error) {
	dtoID := s.mapper.DtoID(d)
	if dtoID != nil && *dtoID != id {
		return nil, fmt.Errorf("%w: %s id mismatch", ErrBadRequest, s.name)
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mapper.PartialUpdate(e, d)
	return s.save(ctx, e, "updated")
}

func (s *Service[E, D]) FindOne(ctx context.Context, id int64) (*D, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDto(e), nil
}

func (s *Service[E, D]) FindAll(ctx context.Context, p query.Pageable) ([]*D, error) {
	out := []*D{}
	for e, err := range s.repo.FindAll(ctx, p) {
		if err != nil {
			return nil, err
		}
		out = append(out, s.mapper.ToDto(e))
	}
	return out, nil
}

func (s *Service[E, D]) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		var sync *store.IndexSyncError
		if !errors.As(err, &sync) {
			return err
		}
		log.Printf("services: %v", sync)
	}
	if s.pub != nil {
		s.pub.BroadcastChange(s.name, id, "deleted")
	}
	return nil
}

func (s *Service[E, D]) CountAll(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service[E, D]) Search(ctx context.Context, q string, p query.Pageable) ([]*D, error) {
	hits, err := s.search.Search(ctx, q, p)
	if err != nil {
		return nil, err
	}
	out := make([]*D, 0, len(hits))
	for _, e := range hits {
		out = append(out, s.mapper.ToDto(e))
	}
	return out, nil
}

func (s *Service[E, D]) SearchCount(ctx context.Context) (int64, error) {
	return s.search.Count(ctx)
}
