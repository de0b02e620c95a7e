package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrianliechti/avatar/pkg/provider"

	"github.com/stretchr/testify/require"
)

type staticCompleter struct {
	completion *provider.Completion
	err        error
}

func (c *staticCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	return c.completion, c.err
}

type staticSynthesizer struct {
	synthesis *provider.Synthesis
	err       error
}

func (s *staticSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	return s.synthesis, s.err
}

func TestUseGRPC(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "")

	require.False(t, useGRPC("TRACES"))

	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	require.True(t, useGRPC("TRACES"))

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "http/protobuf")
	require.False(t, useGRPC("TRACES"))
	require.True(t, useGRPC("METRICS"))
}

func TestObservableCompleter(t *testing.T) {
	expected := &provider.Completion{
		ID:    "1",
		Model: "llama",

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent("hi")},
		},

		Usage: &provider.Usage{InputTokens: 3, OutputTokens: 1},
	}

	c := NewCompleter("groq", "llama", &staticCompleter{completion: expected})

	result, err := c.Complete(context.Background(), []provider.Message{provider.UserMessage("hello")}, nil)
	require.NoError(t, err)
	require.Same(t, expected, result)

	failure := errors.New("upstream down")

	c = NewCompleter("groq", "llama", &staticCompleter{err: failure})

	_, err = c.Complete(context.Background(), nil, nil)
	require.ErrorIs(t, err, failure)
}

func TestObservableSynthesizer(t *testing.T) {
	expected := &provider.Synthesis{Content: []byte("audio")}

	s := NewSynthesizer("elevenlabs", "eleven_monolingual_v1", &staticSynthesizer{synthesis: expected})

	result, err := s.Synthesize(context.Background(), "hello", &provider.SynthesizeOptions{Voice: "warm"})
	require.NoError(t, err)
	require.Same(t, expected, result)

	failure := errors.New("quota exceeded")

	s = NewSynthesizer("elevenlabs", "eleven_monolingual_v1", &staticSynthesizer{err: failure})

	_, err = s.Synthesize(context.Background(), "hello", nil)
	require.ErrorIs(t, err, failure)
}

func TestObservableEmptyResults(t *testing.T) {
	c := NewCompleter("groq", "llama", &staticCompleter{})

	completion, err := c.Complete(context.Background(), []provider.Message{provider.UserMessage("hello")}, nil)
	require.NoError(t, err)
	require.Nil(t, completion)

	s := NewSynthesizer("elevenlabs", "eleven_monolingual_v1", &staticSynthesizer{})

	synthesis, err := s.Synthesize(context.Background(), "hello", nil)
	require.NoError(t, err)
	require.Nil(t, synthesis)
}

func TestExportInterval(t *testing.T) {
	t.Setenv("OTEL_METRIC_EXPORT_INTERVAL", "")
	require.Equal(t, defaultExportInterval, exportInterval())

	t.Setenv("OTEL_METRIC_EXPORT_INTERVAL", "250")
	require.Equal(t, 250*time.Millisecond, exportInterval())

	t.Setenv("OTEL_METRIC_EXPORT_INTERVAL", "soon")
	require.Equal(t, defaultExportInterval, exportInterval())
}
