package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"billboard-ops/internal/core/domain"
)

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.Validation("invalid %s", name)
	}
	return id, nil
}

// queryDate parses an optional "2006-01-02" query parameter.
func queryDate(r *http.Request, name string) (*domain.Date, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, domain.Validation("invalid '%s' date", name)
	}
	return &d, nil
}

// requiredDate is queryDate for parameters that must be present.
func requiredDate(r *http.Request, name string) (domain.Date, error) {
	d, err := queryDate(r, name)
	if err != nil {
		return domain.Date{}, err
	}
	if d == nil {
		return domain.Date{}, domain.Validation("'%s' is required", name)
	}
	return *d, nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, domain.Validation("invalid '%s'", name)
	}
	return &n, nil
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, domain.Validation("invalid '%s'", name)
	}
	return &id, nil
}

// page reads limit and offset; the use cases clamp them.
func page(r *http.Request) (limit, offset int, err error) {
	l, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	o, err := queryInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}
	if l != nil {
		limit = *l
	}
	if o != nil {
		offset = *o
	}
	return limit, offset, nil
}
