package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Router(srv *Server) http.Handler {
	r := chi.NewRouter()

	r.Post("/conversions", srv.ConvertRecord)
	r.Get("/fields", srv.GetFieldDictionary)
	r.Get("/health", srv.GetHealthStatus)

	return r
}
