package generate

import (
	"context"
	"errors"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// mockText counts calls and returns a canned completion.
type mockText struct {
	calls int
	text  string
	err   error
}

func (m *mockText) Complete(_ context.Context, system, user string) (Completion, error) {
	m.calls++
	if m.err != nil {
		return Completion{}, m.err
	}
	return Completion{Text: m.text, PromptTokens: 10, CompletionTokens: 20}, nil
}

// mockImage counts calls and returns canned bytes.
type mockImage struct {
	calls int
	data  []byte
	err   error
}

func (m *mockImage) Generate(_ context.Context, prompt, size string) ([]byte, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

// failingStore misses every Get and rejects every Put.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool)            { return nil, false }
func (failingStore) Put(string, []byte) error             { return errors.New("disk full") }
func (failingStore) Stats() (models.CacheStats, error)    { return models.CacheStats{}, nil }
func (failingStore) Clear() error                         { return nil }
func (failingStore) Close() error                         { return nil }
