package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path, _ := url.PathUnescape(r.RequestURI)
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// configureRouting builds the server's router: the public root and health
// endpoints, the versioned dice API, a WebSocket endpoint per room, and the
// Prometheus scrape endpoint. Every route under /v1 goes through
// authMiddleware, which is a no-op when cfg.AuthTokens is empty.
func configureRouting(d *deps, metrics *Metrics, cfg Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/", rootHandler)
	r.HandleFunc("/healthz", healthzHandler)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{}))

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(authMiddleware(cfg.AuthTokens))
	api.HandleFunc("/roll/{expression}", d.rollHandler).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{room}/chat", d.chatHandler).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{room}/chat", d.logHandler).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{room}/chat/ws", d.wsHandler).Methods(http.MethodGet)

	return r
}
