// Package handlers implements the REST API endpoint handlers for dnshdr.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime, process and codec statistics
//
// Header Codec:
//   - POST /api/v1/header/decode - Decode 12 header bytes given as hex
//   - POST /api/v1/header/encode - Encode header fields to 12 bytes of hex
//
// Authentication:
//
// Endpoints support optional API key authentication via the X-API-Key header.
// When api.api_key is configured the key is required for every /api/v1 route.
//
// The service binds to 127.0.0.1:8053 by default.
//
// @title dnshdr Header Inspection API
// @version 1.0
// @description Decode and encode DNS message headers (RFC 1035 Section 4.1.1).
//
// @contact.name dnshdr
// @contact.url https://github.com/jroosing/dnsheader
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8053
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/jroosing/dnsheader/internal/config"
	"github.com/jroosing/dnsheader/internal/stats"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	stats     *stats.CodecStats
	startTime time.Time

	procOnce sync.Once
	proc     *process.Process
}

// New creates a new Handler. A nil codecStats gets a fresh collector and a
// nil logger falls back to slog.Default.
func New(cfg *config.Config, codecStats *stats.CodecStats, logger *slog.Logger) *Handler {
	if codecStats == nil {
		codecStats = stats.NewCodecStats()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		stats:     codecStats,
		startTime: time.Now(),
	}
}

// CodecStats returns the collector the handlers record into.
func (h *Handler) CodecStats() *stats.CodecStats {
	return h.stats
}

// process returns a handle on the current process, or nil when the platform
// does not expose one.
func (h *Handler) process() *process.Process {
	h.procOnce.Do(func() {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			h.logger.Debug("process stats unavailable", "err", err)
			return
		}
		h.proc = p
	})
	return h.proc
}
