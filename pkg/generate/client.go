package generate

import (
	"context"
	"errors"
)

// ErrExternalService marks failures of the text- or image-generation APIs.
// Callers degrade the corresponding report section instead of aborting.
var ErrExternalService = errors.New("external service error")

// Completion is the result of a text-generation call.
type Completion struct {
	Text             string
	PromptTokens     int64
	CompletionTokens int64
}

// TextClient abstracts the text-generation API so it can be mocked.
type TextClient interface {
	Complete(ctx context.Context, system, user string) (Completion, error)
}

// ImageClient abstracts the image-generation API. Generate returns the
// raw image bytes, downloading them if the service hands back a URL.
type ImageClient interface {
	Generate(ctx context.Context, prompt, size string) ([]byte, error)
}
