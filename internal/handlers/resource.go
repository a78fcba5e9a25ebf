package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"keeper/internal/services"
)

// resource serves the uniform CRUD and search surface one entity exposes
// under /api. Mount registers it twice, once under the resource path and
// once under the _search prefix.
type resource[E, D any] struct {
	svc *services.Service[E, D]
}

func Mount[E, D any](r chi.Router, path string, svc *services.Service[E, D]) {
	res := &resource[E, D]{svc: svc}
	r.Route("/"+path, func(r chi.Router) {
		r.Post("/", res.create)
		r.Get("/", res.list)
		r.Get("/count", res.count)
		r.Get("/{id}", res.get)
		r.Put("/{id}", res.update)
		r.Patch("/{id}", res.patch)
		r.Delete("/{id}", res.delete)
	})
	r.Get("/_search/"+path, res.search)
	r.Get("/_search/"+path+"/count", res.searchCount)
}

func (res *resource[E, D]) create(w http.ResponseWriter, r *http.Request) {
	var d D
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	out, err := res.svc.Create(r.Context(), &d)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, out)
}

func (res *resource[E, D]) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var d D
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	out, err := res.svc.Update(r.Context(), id, &d)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (res *resource[E, D]) patch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var d D
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	out, err := res.svc.PartialUpdate(r.Context(), id, &d)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (res *resource[E, D]) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	out, err := res.svc.FindOne(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (res *resource[E, D]) list(w http.ResponseWriter, r *http.Request) {
	out, err := res.svc.FindAll(r.Context(), parsePageable(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (res *resource[E, D]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := res.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (res *resource[E, D]) count(w http.ResponseWriter, r *http.Request) {
	n, err := res.svc.CountAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"count": n})
}

func (res *resource[E, D]) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	out, err := res.svc.Search(r.Context(), q, parsePageable(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (res *resource[E, D]) searchCount(w http.ResponseWriter, r *http.Request) {
	n, err := res.svc.SearchCount(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"count": n})
}
