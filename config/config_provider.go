package config

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/adrianliechti/avatar/pkg/otel"
	"github.com/adrianliechti/avatar/pkg/provider"
	"github.com/adrianliechti/avatar/pkg/provider/elevenlabs"
	"github.com/adrianliechti/avatar/pkg/provider/openai"
	"github.com/adrianliechti/avatar/pkg/relay"
	"github.com/adrianliechti/avatar/pkg/voice"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Timeout time.Duration `yaml:"timeout"`

	Proxy *proxyConfig `yaml:"proxy"`

	// completion
	Prompt      string   `yaml:"prompt"`
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`

	// synthesis
	Stability       *float64 `yaml:"stability"`
	SimilarityBoost *float64 `yaml:"similarity_boost"`
}

// httpClient returns the outbound client of the provider, honoring its
// proxy and timeout.
func (cfg providerConfig) httpClient() (*http.Client, error) {
	return cfg.Proxy.httpClient(cfg.Timeout)
}

func (c *Config) registerProviders(f *configFile) error {
	completer, err := createCompleter(f.Completer)

	if err != nil {
		return err
	}

	synthesizer, err := createSynthesizer(f.Synthesizer, c.Voices)

	if err != nil {
		return err
	}

	c.completer = otel.NewCompleter(f.Completer.Type, f.Completer.Model, completer)
	c.synthesizer = otel.NewSynthesizer(f.Synthesizer.Type, f.Synthesizer.Model, synthesizer)

	if f.Completer.Prompt != "" {
		c.relayOptions = append(c.relayOptions, relay.WithSystemPrompt(f.Completer.Prompt))
	}

	if f.Completer.Temperature != nil {
		c.relayOptions = append(c.relayOptions, relay.WithTemperature(*f.Completer.Temperature))
	}

	if f.Completer.MaxTokens != nil {
		c.relayOptions = append(c.relayOptions, relay.WithMaxTokens(*f.Completer.MaxTokens))
	}

	return nil
}

func createCompleter(cfg providerConfig) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "groq":
		if cfg.URL == "" {
			cfg.URL = "https://api.groq.com/openai/v1/"
		}

		return openaiCompleter(cfg)

	case "openai", "openai-compatible":
		return openaiCompleter(cfg)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}

func openaiCompleter(cfg providerConfig) (provider.Completer, error) {
	client, err := cfg.httpClient()

	if err != nil {
		return nil, err
	}

	options := []openai.Option{
		openai.WithClient(client),
	}

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewCompleter(cfg.URL, cfg.Model, options...)
}

func createSynthesizer(cfg providerConfig, voices *voice.Map) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "elevenlabs":
		return elevenlabsSynthesizer(cfg, voices)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func elevenlabsSynthesizer(cfg providerConfig, voices *voice.Map) (provider.Synthesizer, error) {
	client, err := cfg.httpClient()

	if err != nil {
		return nil, err
	}

	options := []elevenlabs.Option{
		elevenlabs.WithClient(client),
		elevenlabs.WithVoices(voices),
	}

	if cfg.Token != "" {
		options = append(options, elevenlabs.WithToken(cfg.Token))
	}

	if cfg.Stability != nil || cfg.SimilarityBoost != nil {
		stability, similarityBoost := 0.5, 0.5

		if cfg.Stability != nil {
			stability = *cfg.Stability
		}

		if cfg.SimilarityBoost != nil {
			similarityBoost = *cfg.SimilarityBoost
		}

		options = append(options, elevenlabs.WithVoiceSettings(stability, similarityBoost))
	}

	return elevenlabs.NewSynthesizer(cfg.URL, cfg.Model, options...)
}
