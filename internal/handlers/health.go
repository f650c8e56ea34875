package handlers

import (
	"net/http"
	"time"
)

// HealthResponse reports storage reachability and the cache in use
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck returns the service health status
// @Summary Health check
// @Description Pings the database and reports which cache backend is active
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Storage:   "ok",
		Database:  h.storage.Type(),
		Cache:     h.cacheBackend,
		Timestamp: time.Now().UTC(),
	}

	status := http.StatusOK
	if err := h.storage.Health(r.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Storage = err.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
