package models

import "time"

// RunEntry records one external-API interaction made by a generator.
type RunEntry struct {
	Task             string    `json:"task"`
	Model            string    `json:"model"`
	Fingerprint      string    `json:"fingerprint"`
	CacheHit         bool      `json:"cache_hit"`
	Status           string    `json:"status"`
	LatencyMs        int64     `json:"latency_ms"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	CreatedAt        time.Time `json:"created_at"`
}
