package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
	"github.com/maicaalmonte/nutricalculator/internal/pipeline"
)

const version = "1.0.0"

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "nutricalculator",
		"version": version,
	})
}

// getProducts handles the core product query. Parameter violations get a 400
// before any pipeline stage runs; pipeline outcomes map onto the
// status/message contract.
func (s *Server) getProducts(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Msg)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.pipeline.Products(r.Context(), params)
	switch {
	case err == nil:
		writeProducts(w, records)
	case errors.As(err, new(*model.ValidationError)):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pipeline.ErrNoProducts):
		// Mirrors the upstream contract: an empty result is reported with
		// error status on an OK response.
		writeError(w, http.StatusOK, "no products were fetched, please try again")
	case errors.Is(err, pipeline.ErrUpstream):
		writeError(w, http.StatusBadGateway, "product source unavailable")
	default:
		s.log.Error("product query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// getNews proxies the headlines lookup. No caching, no processing.
func (s *Server) getNews(w http.ResponseWriter, r *http.Request) {
	if s.news == nil {
		writeError(w, http.StatusServiceUnavailable, "news is not configured")
		return
	}

	articles, err := s.news.TopHeadlines(r.Context())
	if err != nil {
		s.log.Warn("news fetch failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "could not fetch news")
		return
	}

	writeJSON(w, http.StatusOK, newsBody{Status: "success", Articles: articles})
}
