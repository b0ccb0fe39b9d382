// Package server serves the keyword analysis engine over HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/kwinsight/internal/config"
)

// NewMux routes the API, the health check and the Prometheus endpoint.
func NewMux(handler *KeywordHandler, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/keyword/analyze", handler.Analyze)
	mux.HandleFunc("POST /api/bulk/analyze", handler.AnalyzeBulk)
	mux.HandleFunc("GET /api/keyword/suggestions", handler.Suggestions)
	mux.HandleFunc("GET /api/keyword/questions", handler.Questions)
	mux.HandleFunc("GET /api/keyword/difficulty", handler.Difficulty)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Handler wraps mux with request ids, access logs and CORS.
func Handler(mux http.Handler, cfg config.ServerConfig) http.Handler {
	return corsMiddleware(requestIDMiddleware(loggingMiddleware(mux)), cfg.CORS.AllowedOrigins)
}

func NewHTTPServer(mux http.Handler, cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h2c.NewHandler(Handler(mux, cfg), &http2.Server{}),
	}
}
