package search

import (
	"context"
	"strconv"

	"keeper/internal/query"
	"keeper/internal/rowmap"

	"github.com/blevesearch/bleve/v2"
)

// Index is the per-entity adapter over one bleve index. Writes are whole-
// document upserts keyed by the relational id; Search runs the query string
// against all indexed fields and rehydrates entities from the stored hit
// fields through the same converters that read SQL rows.
type Index[E any] struct {
	idx bleve.Index
	doc func(*E) map[string]any
	row func(rowmap.Row, string) (*E, error)
}

func newIndex[E any](e *Engine, name string, doc func(*E) map[string]any, row func(rowmap.Row, string) (*E, error)) (*Index[E], error) {
	idx, err := e.open(name)
	if err != nil {
		return nil, err
	}
	return &Index[E]{idx: idx, doc: doc, row: row}, nil
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Upsert. The caller's entity is stored as-is; indexing the same id twice
// replaces the previous document.
func (x *Index[E]) Index(ctx context.Context, id int64, e *E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return x.idx.Index(docID(id), x.doc(e))
}

func (x *Index[E]) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return x.idx.Delete(docID(id))
}

// Search runs a free-text query over all indexed fields. Sort keys refer to
// document fields; without them hits come back by descending score.
func (x *Index[E]) Search(ctx context.Context, q string, p query.Pageable) ([]*E, error) {
	req := bleve.NewSearchRequest(bleve.NewQueryStringQuery(q))
	size := p.Size
	if size <= 0 {
		size = 100
	}
	req.Size = size
	req.From = p.Page * size
	if len(p.Sort) > 0 {
		order := make([]string, 0, len(p.Sort))
		for _, s := range p.Sort {
			field := s.Field
			if s.Desc {
				field = "-" + field
			}
			order = append(order, field)
		}
		req.SortBy(order)
	}
	return x.SearchWith(ctx, req)
}

// SearchWith is the escape hatch for callers needing precise field or sort
// control: it takes a fully pre-built request. Stored fields are always
// requested so hits can be rehydrated.
func (x *Index[E]) SearchWith(ctx context.Context, req *bleve.SearchRequest) ([]*E, error) {
	req.Fields = []string{"*"}
	res, err := x.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]*E, 0, len(res.Hits))
	for _, hit := range res.Hits {
		row := rowmap.Row{}
		for k, v := range hit.Fields {
			row[k] = v
		}
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		row["id"] = id
		e, err := x.row(row, "")
		if err != nil {
			return nil, err
		}
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (x *Index[E]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := x.idx.DocCount()
	return int64(n), err
}
