package generate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/flowlens-ai/flowlens/pkg/cache"
	"github.com/flowlens-ai/flowlens/pkg/models"
	"github.com/flowlens-ai/flowlens/pkg/runlog"
)

// summaryInputs are the semantic inputs that determine a summary request.
// The fingerprint covers nothing else: no timestamps, no paths.
type summaryInputs struct {
	Task         string               `json:"task"`
	FlowName     string               `json:"flow_name"`
	Interactions []models.Interaction `json:"interactions"`
}

// Summarizer produces the flow summary, consulting the response cache
// before calling the text-generation API.
type Summarizer struct {
	Client TextClient
	Store  cache.Store
	Model  string
	Runs   *runlog.Logger
}

// Generate returns the summary text and whether it came from the cache.
// A cache write failure is logged but does not fail the run; an API
// failure wraps ErrExternalService.
func (s *Summarizer) Generate(ctx context.Context, flowName string, interactions []models.Interaction) (string, bool, error) {
	fp := cache.Fingerprint(summaryInputs{
		Task:         "summary",
		FlowName:     flowName,
		Interactions: interactions,
	})

	if payload, ok := s.Store.Get(fp); ok {
		s.record(ctx, models.RunEntry{
			Task: "summary", Model: s.Model, Fingerprint: fp,
			CacheHit: true, Status: "ok", CreatedAt: time.Now().UTC(),
		})
		return string(payload), true, nil
	}

	start := time.Now()
	comp, err := s.Client.Complete(ctx, summarySystemPrompt, buildSummaryPrompt(flowName, interactions))
	latency := time.Since(start).Milliseconds()
	if err != nil {
		s.record(ctx, models.RunEntry{
			Task: "summary", Model: s.Model, Fingerprint: fp,
			Status: "error", LatencyMs: latency, CreatedAt: time.Now().UTC(),
		})
		return "", false, fmt.Errorf("%w: chat completion: %v", ErrExternalService, err)
	}

	if err := s.Store.Put(fp, []byte(comp.Text)); err != nil {
		log.Printf("warning: summary cache write failed, next run will pay again: %v", err)
	}

	s.record(ctx, models.RunEntry{
		Task: "summary", Model: s.Model, Fingerprint: fp,
		Status: "ok", LatencyMs: latency,
		PromptTokens: comp.PromptTokens, CompletionTokens: comp.CompletionTokens,
		CreatedAt: time.Now().UTC(),
	})
	return comp.Text, false, nil
}

func (s *Summarizer) record(ctx context.Context, e models.RunEntry) {
	if err := s.Runs.Record(ctx, e); err != nil {
		log.Printf("run log error: %v", err)
	}
}
