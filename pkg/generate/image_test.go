package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flowlens-ai/flowlens/pkg/cache/memory"
)

func newTestImageGenerator(t *testing.T, client ImageClient) *ImageGenerator {
	t.Helper()
	return &ImageGenerator{
		Client: client,
		Store:  memory.New(),
		Model:  "dall-e-3",
		Size:   "1024x1024",
		OutDir: t.TempDir(),
	}
}

func TestImageMissWritesFile(t *testing.T) {
	client := &mockImage{data: []byte("PNGDATA")}
	g := newTestImageGenerator(t, client)

	path, hit, err := g.Generate(context.Background(), "Checkout Flow", "summary text")
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first run should be a cache miss")
	}
	if client.calls != 1 {
		t.Errorf("expected 1 API call, got %d", client.calls)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "PNGDATA" {
		t.Errorf("unexpected file contents: %s", data)
	}
	if !strings.HasPrefix(filepath.Base(path), "flow_social_media_") {
		t.Errorf("unexpected file name: %s", path)
	}
}

func TestImageHitStillWritesFile(t *testing.T) {
	client := &mockImage{data: []byte("PNGDATA")}
	g := newTestImageGenerator(t, client)

	ctx := context.Background()
	if _, _, err := g.Generate(ctx, "Checkout Flow", "summary text"); err != nil {
		t.Fatal(err)
	}

	path, hit, err := g.Generate(ctx, "Checkout Flow", "summary text")
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second run should be a cache hit")
	}
	if client.calls != 1 {
		t.Errorf("warm cache should not call the API, got %d calls", client.calls)
	}

	// The hit still materializes the bytes for this run's report.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "PNGDATA" {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestImageExternalError(t *testing.T) {
	client := &mockImage{err: errors.New("quota exceeded")}
	g := newTestImageGenerator(t, client)

	_, _, err := g.Generate(context.Background(), "Checkout Flow", "summary text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrExternalService) {
		t.Errorf("expected ErrExternalService, got %v", err)
	}
}

func TestImagePromptContents(t *testing.T) {
	prompt := buildImagePrompt("Checkout Flow")

	for _, want := range []string{
		"Theme: Checkout Flow",
		"social media",
		"No text in the image",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
