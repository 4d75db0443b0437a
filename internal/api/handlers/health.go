package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/dnsheader/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, process figures and codec counters
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	snap := h.stats.Snapshot()

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       h.processStats(),
		Codec: models.CodecStatsResponse{
			DecodesTotal:   snap.DecodesTotal,
			DecodesFailed:  snap.DecodesFailed,
			Truncated:      snap.Truncated,
			EncodesTotal:   snap.EncodesTotal,
			EncodesFailed:  snap.EncodesFailed,
			WriteFailures:  snap.WriteFailures,
			InvalidByField: snap.InvalidByField,
		},
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) processStats() *models.ProcessStatsResponse {
	p := h.process()
	if p == nil {
		return nil
	}

	out := &models.ProcessStatsResponse{PID: p.Pid}
	if mem, err := p.MemoryInfo(); err == nil {
		out.RSSMB = float64(mem.RSS) / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err == nil {
		out.CPUPercent = cpu
	}
	if n, err := p.NumThreads(); err == nil {
		out.NumThreads = n
	}
	return out
}
