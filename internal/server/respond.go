package server

import (
	"encoding/json"
	"net/http"

	"github.com/maicaalmonte/nutricalculator/internal/model"
	"github.com/maicaalmonte/nutricalculator/internal/news"
)

// successBody is the payload contract for product queries:
// {"status":"success","data":[…]}.
type successBody struct {
	Status string                `json:"status"`
	Data   []model.ProductRecord `json:"data"`
}

// newsBody is the payload contract for the news pass-through.
type newsBody struct {
	Status   string         `json:"status"`
	Articles []news.Article `json:"articles"`
}

// errorBody is the payload contract for every failure:
// {"status":"error","message":…}.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProducts(w http.ResponseWriter, records []model.ProductRecord) {
	writeJSON(w, http.StatusOK, successBody{Status: "success", Data: records})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Status: "error", Message: msg})
}
