package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type cacheSizer interface {
	Len() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	cache   cacheSizer
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(db dbPinger, cache cacheSizer, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 until the database accepts queries.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{"database": h.pingDB(r.Context())}
	if h.cache != nil {
		components["cache"] = CompStatus{Status: "ok", Detail: strconv.Itoa(h.cache.Len()) + " entries"}
	}

	status, code := "ok", http.StatusOK
	if components["database"].Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
