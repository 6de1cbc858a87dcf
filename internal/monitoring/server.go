package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paveg/dataseries/internal/version"
)

// Server exposes collected series metrics over HTTP.
type Server struct {
	collector *MetricsCollector
	server    *http.Server
}

// NewMonitoringServer creates a server listening on addr (e.g. ":9090").
func NewMonitoringServer(collector *MetricsCollector, addr string) *Server {
	mux := http.NewServeMux()

	server := &Server{
		collector: collector,
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second, //nolint:mnd // Standard timeout value
		},
	}

	mux.HandleFunc("/metrics", server.handleMetrics)
	mux.HandleFunc("/summary", server.handleSummary)
	mux.HandleFunc("/health", server.handleHealth)

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewExporter(collector))
	mux.Handle("/metrics/prometheus", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return server
}

// Addr returns the configured listen address.
func (ms *Server) Addr() string {
	return ms.server.Addr
}

// Start serves until the server is shut down. It returns nil after a
// graceful Shutdown.
func (ms *Server) Start() error {
	if err := ms.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones to finish.
func (ms *Server) Shutdown(ctx context.Context) error {
	return ms.server.Shutdown(ctx)
}

// handleMetrics serves every recorded operation.
func (ms *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	ms.writeJSON(w, r, ms.collector.GetMetrics())
}

// handleSummary serves aggregate statistics.
func (ms *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ms.writeJSON(w, r, ms.collector.GetSummary())
}

// handleHealth serves the health check endpoint.
func (ms *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ms.writeJSON(w, r, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"enabled":   ms.collector.IsEnabled(),
	})
}

func (ms *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Server", version.UserAgent())
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
