package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string                `json:"uptime"`
	UptimeSeconds int64                 `json:"uptime_seconds"`
	StartTime     time.Time             `json:"start_time"`
	GoRoutines    int                   `json:"goroutines"`
	MemoryAllocMB float64               `json:"memory_alloc_mb"`
	NumCPU        int                   `json:"num_cpu"`
	Process       *ProcessStatsResponse `json:"process,omitempty"`
	Codec         CodecStatsResponse    `json:"codec"`
}

// ProcessStatsResponse contains OS-level figures for the serving process.
type ProcessStatsResponse struct {
	PID        int32   `json:"pid"`
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	NumThreads int32   `json:"num_threads"`
}

// CodecStatsResponse contains header codec counters.
type CodecStatsResponse struct {
	DecodesTotal   uint64            `json:"decodes_total"`
	DecodesFailed  uint64            `json:"decodes_failed"`
	Truncated      uint64            `json:"truncated"`
	EncodesTotal   uint64            `json:"encodes_total"`
	EncodesFailed  uint64            `json:"encodes_failed"`
	WriteFailures  uint64            `json:"write_failures"`
	InvalidByField map[string]uint64 `json:"invalid_by_field"`
}
