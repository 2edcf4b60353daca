package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers HTTP routes.
func NewRouter(handler *Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/chat", handler.Chat).Methods(nethttp.MethodPost)
	r.HandleFunc("/games", handler.Games).Methods(nethttp.MethodGet)
	r.HandleFunc("/games/{sport}", handler.GamesBySport).Methods(nethttp.MethodGet)
	r.HandleFunc("/stats/{sport}", handler.Stats).Methods(nethttp.MethodGet)
	return r
}
