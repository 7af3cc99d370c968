package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// parseParams reads the recognised query options into a Params. Absent
// numeric options stay zero; pipeline defaults fill them in later.
func parseParams(r *http.Request) (model.Params, error) {
	var p model.Params
	var err error

	if p.Page, err = queryInt(r, "page"); err != nil {
		return p, err
	}
	if p.Limit, err = queryInt(r, "limit"); err != nil {
		return p, err
	}
	if p.MaxPages, err = queryInt(r, "max_pages"); err != nil {
		return p, err
	}

	q := r.URL.Query()
	p.Language = q.Get("language")
	p.Category = q.Get("category")
	p.Brand = q.Get("brand")
	p.ProductName = q.Get("product_name")

	return p, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &model.ValidationError{Msg: fmt.Sprintf("%s must be an integer", key)}
	}
	if n < 1 {
		return 0, &model.ValidationError{Msg: fmt.Sprintf("%s must be a positive integer", key)}
	}
	return n, nil
}
