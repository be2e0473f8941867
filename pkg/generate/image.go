package generate

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/flowlens-ai/flowlens/pkg/cache"
	"github.com/flowlens-ai/flowlens/pkg/models"
	"github.com/flowlens-ai/flowlens/pkg/runlog"
)

// imageInputs are the semantic inputs that determine an image request.
type imageInputs struct {
	Task     string `json:"task"`
	FlowName string `json:"flow_name"`
	Summary  string `json:"summary"`
}

// ImageGenerator produces the social-media image. The cache stores the
// image bytes themselves, so a hit never re-calls the paid API; the bytes
// are still written to a fresh timestamped file every run so each report
// links its own copy.
type ImageGenerator struct {
	Client ImageClient
	Store  cache.Store
	Model  string
	Size   string
	OutDir string
	Runs   *runlog.Logger
}

// Generate returns the path of the written image file and whether the
// bytes came from the cache.
func (g *ImageGenerator) Generate(ctx context.Context, flowName, summary string) (string, bool, error) {
	fp := cache.Fingerprint(imageInputs{
		Task:     "image",
		FlowName: flowName,
		Summary:  summary,
	})

	payload, hit := g.Store.Get(fp)
	if !hit {
		start := time.Now()
		data, err := g.Client.Generate(ctx, buildImagePrompt(flowName), g.Size)
		latency := time.Since(start).Milliseconds()
		if err != nil {
			g.record(ctx, models.RunEntry{
				Task: "image", Model: g.Model, Fingerprint: fp,
				Status: "error", LatencyMs: latency, CreatedAt: time.Now().UTC(),
			})
			return "", false, fmt.Errorf("%w: image generation: %v", ErrExternalService, err)
		}
		payload = data

		if err := g.Store.Put(fp, payload); err != nil {
			log.Printf("warning: image cache write failed, next run will pay again: %v", err)
		}
		g.record(ctx, models.RunEntry{
			Task: "image", Model: g.Model, Fingerprint: fp,
			Status: "ok", LatencyMs: latency, CreatedAt: time.Now().UTC(),
		})
	} else {
		g.record(ctx, models.RunEntry{
			Task: "image", Model: g.Model, Fingerprint: fp,
			CacheHit: true, Status: "ok", CreatedAt: time.Now().UTC(),
		})
	}

	name := fmt.Sprintf("flow_social_media_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(g.OutDir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", hit, fmt.Errorf("write image file: %w", err)
	}
	return path, hit, nil
}

func (g *ImageGenerator) record(ctx context.Context, e models.RunEntry) {
	if err := g.Runs.Record(ctx, e); err != nil {
		log.Printf("run log error: %v", err)
	}
}
