// Package search mirrors entities into an embedded full-text index. Documents
// are denormalized copies keyed by the relational id; the adapter never reads
// the relational store, so the index is only as fresh as the last write that
// reached it.
package search

import (
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Engine owns one bleve index per entity, opened lazily under a shared
// directory. An empty directory keeps every index in memory, which the tests
// rely on.
type Engine struct {
	dir string

	mu      sync.Mutex
	indexes map[string]bleve.Index
}

func Open(dir string) *Engine {
	return &Engine{dir: dir, indexes: make(map[string]bleve.Index)}
}

func InMemory() *Engine {
	return Open("")
}

func (e *Engine) open(name string) (bleve.Index, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx, ok := e.indexes[name]; ok {
		return idx, nil
	}
	idx, err := e.openLocked(name)
	if err != nil {
		return nil, err
	}
	e.indexes[name] = idx
	return idx, nil
}

func (e *Engine) openLocked(name string) (bleve.Index, error) {
	if e.dir == "" {
		return bleve.NewMemOnly(indexMapping())
	}
	path := filepath.Join(e.dir, name+".bleve")
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		return bleve.New(path, indexMapping())
	}
	return idx, err
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var firstErr error
	for name, idx := range e.indexes {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(e.indexes, name)
	}
	return firstErr
}

// indexMapping keeps the dynamic defaults: every document field indexed and
// stored, so hits can be rehydrated without touching the relational store.
func indexMapping() mapping.IndexMapping {
	return bleve.NewIndexMapping()
}
