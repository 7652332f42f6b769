package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fightgate/pkg/metrics"
)

// handleHealth handles GET /healthz by serving the custom metrics registry.
// A scrape doubles as the liveness probe: the process answers or it doesn't.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
