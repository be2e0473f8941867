package generate

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// clientOptions builds the shared request options for the OpenAI SDK.
func clientOptions(apiKey, baseURL string) []option.RequestOption {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return opts
}

// OpenAIText implements TextClient using the official openai-go SDK.
type OpenAIText struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAIText returns a chat-completions client for the given model.
func NewOpenAIText(apiKey, baseURL, model string) (*OpenAIText, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("summary model is required")
	}
	return &OpenAIText{Model: model, Opts: clientOptions(apiKey, baseURL)}, nil
}

func (o *OpenAIText) Complete(ctx context.Context, system, user string) (Completion, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		return Completion{}, err
	}
	if len(resp.Choices) == 0 {
		return Completion{}, errors.New("openai: empty choices")
	}
	return Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// OpenAIImage implements ImageClient using the openai-go images API.
type OpenAIImage struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAIImage returns an image-generation client for the given model.
func NewOpenAIImage(apiKey, baseURL, model string) (*OpenAIImage, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("image model is required")
	}
	return &OpenAIImage{Model: model, Opts: clientOptions(apiKey, baseURL)}, nil
}

func (o *OpenAIImage) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:   openai.ImageModel(o.Model),
		Prompt:  prompt,
		Size:    openai.ImageGenerateParamsSize(size),
		Quality: openai.ImageGenerateParamsQualityStandard,
		N:       openai.Int(1),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("openai: empty image data")
	}

	img := resp.Data[0]
	if img.B64JSON != "" {
		return base64.StdEncoding.DecodeString(img.B64JSON)
	}
	if img.URL != "" {
		return downloadImage(ctx, img.URL)
	}
	return nil, errors.New("openai: image response has neither url nor payload")
}

// downloadImage fetches the generated image from the short-lived URL the
// service returns.
func downloadImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
