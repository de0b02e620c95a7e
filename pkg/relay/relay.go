// Package relay turns a user message into a short spoken reply by calling a
// completion provider and then a synthesis provider.
package relay

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/adrianliechti/avatar/pkg/metrics"
	"github.com/adrianliechti/avatar/pkg/provider"
	"github.com/adrianliechti/avatar/pkg/text"
	"github.com/adrianliechti/avatar/pkg/voice"
)

const (
	DefaultSystemPrompt = "You are a helpful AI assistant. Keep your responses conversational and engaging, but concise (1-2 sentences max)."

	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 150
)

type Relay struct {
	completer   provider.Completer
	synthesizer provider.Synthesizer

	system string

	maxTokens   int
	temperature float32
}

type Option func(*Relay)

func New(options ...Option) (*Relay, error) {
	r := &Relay{
		system: DefaultSystemPrompt,

		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}

	for _, option := range options {
		option(r)
	}

	if r.completer == nil {
		return nil, errors.New("missing completer provider")
	}

	if r.synthesizer == nil {
		return nil, errors.New("missing synthesizer provider")
	}

	return r, nil
}

func WithCompleter(completer provider.Completer) Option {
	return func(r *Relay) {
		r.completer = completer
	}
}

func WithSynthesizer(synthesizer provider.Synthesizer) Option {
	return func(r *Relay) {
		r.synthesizer = synthesizer
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(r *Relay) {
		r.system = prompt
	}
}

func WithTemperature(temperature float32) Option {
	return func(r *Relay) {
		r.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(r *Relay) {
		r.maxTokens = maxTokens
	}
}

type Reply struct {
	Text string

	// Audio is the base64 (standard encoding) of the synthesized audio.
	Audio string
}

// Chat completes message and synthesizes the reply with the given voice.
// The synthesizer is only called once the completion succeeded; on any
// failure no partial reply is returned.
func (r *Relay) Chat(ctx context.Context, message, voiceName string) (*Reply, error) {
	start := time.Now()

	if voiceName == "" {
		voiceName = voice.DefaultName
	}

	slog.InfoContext(ctx, "relay chat", "voice", voiceName, "message_length", len(message))

	reply, err := r.Complete(ctx, message)

	if err != nil {
		metrics.Observe(metrics.StageChat, start, err)
		return nil, err
	}

	audio, err := r.Synthesize(ctx, reply, voiceName)

	if err != nil {
		metrics.Observe(metrics.StageChat, start, err)
		return nil, err
	}

	metrics.Observe(metrics.StageChat, start, nil)

	return &Reply{
		Text:  reply,
		Audio: audio,
	}, nil
}

// Complete returns the model reply for message as produced by the model.
// A reply without any visible text is an error. Errors are *CompletionError.
func (r *Relay) Complete(ctx context.Context, message string) (string, error) {
	start := time.Now()

	messages := []provider.Message{
		provider.SystemMessage(r.system),
		provider.UserMessage(message),
	}

	maxTokens := r.maxTokens
	temperature := r.temperature

	options := &provider.CompleteOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	var content string

	completion, err := r.completer.Complete(ctx, messages, options)

	if err == nil && completion != nil && completion.Message != nil {
		content = completion.Message.Text()
	}

	if err == nil && strings.TrimSpace(content) == "" {
		err = errors.New("empty completion")
	}

	if err != nil {
		metrics.Observe(metrics.StageCompletion, start, err)
		slog.ErrorContext(ctx, "completion failed", "error", err)

		return "", &CompletionError{Err: err}
	}

	metrics.Observe(metrics.StageCompletion, start, nil)

	slog.DebugContext(ctx, "completion done", "text_length", len(content), "reason", completion.Reason)

	return content, nil
}

// Synthesize returns the base64 encoded audio of input. Whitespace in input
// is normalized before it is sent to the synthesizer. Errors are *SynthesisError.
func (r *Relay) Synthesize(ctx context.Context, input, voiceName string) (string, error) {
	start := time.Now()

	input = text.Normalize(input)

	options := &provider.SynthesizeOptions{
		Voice: voiceName,
	}

	synthesis, err := r.synthesizer.Synthesize(ctx, input, options)

	if err == nil && (synthesis == nil || len(synthesis.Content) == 0) {
		err = errors.New("empty audio")
	}

	if err != nil {
		metrics.Observe(metrics.StageSynthesis, start, err)
		slog.ErrorContext(ctx, "synthesis failed", "voice", voiceName, "error", err)

		return "", &SynthesisError{Err: err}
	}

	metrics.Observe(metrics.StageSynthesis, start, nil)
	metrics.ObserveAudio(len(synthesis.Content))

	audio := base64.StdEncoding.EncodeToString(synthesis.Content)

	slog.DebugContext(ctx, "synthesis done", "voice", voiceName, "audio_length", len(audio))

	return audio, nil
}
