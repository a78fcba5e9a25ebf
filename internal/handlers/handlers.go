package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"keeper/internal/query"
	"keeper/internal/services"
	"keeper/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrBadRequest):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// parsePageable reads ?page=&size=&sort=field,dir with repeatable sort
// keys. Absent paging params leave the zero value, which means unpaged.
func parsePageable(r *http.Request) query.Pageable {
	var p query.Pageable
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 {
		p.Size = v
	}
	for _, raw := range q["sort"] {
		field, dir, _ := strings.Cut(raw, ",")
		if field == "" {
			continue
		}
		p.Sort = append(p.Sort, query.Sort{
			Field: field,
			Desc:  strings.EqualFold(dir, "desc"),
		})
	}
	return p
}
