package config

import (
	"bytes"
	"errors"
	"os"
	"time"

	"github.com/adrianliechti/avatar/pkg/auth"
	"github.com/adrianliechti/avatar/pkg/provider"
	"github.com/adrianliechti/avatar/pkg/relay"
	"github.com/adrianliechti/avatar/pkg/voice"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

type Config struct {
	Address string

	Origins []string

	Authorizers []auth.Provider

	Voices *voice.Map

	completer   provider.Completer
	synthesizer provider.Synthesizer

	relayOptions []relay.Option
}

// ConfigurationError reports a required setting that is missing.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return e.Key + " not found in environment variables"
}

// Parse reads the optional YAML file at path, applies environment overrides
// and builds the providers. Missing provider tokens yield a *ConfigurationError.
func Parse(path string) (*Config, error) {
	file := defaultConfigFile()

	if path != "" {
		if err := parseFile(path, file); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(file); err != nil {
		return nil, err
	}

	if err := file.validate(); err != nil {
		return nil, err
	}

	c := &Config{
		Address: file.Address,
		Origins: file.Origins,

		Voices: voice.New(file.Voices),
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Completer() provider.Completer {
	return c.completer
}

func (c *Config) Synthesizer() provider.Synthesizer {
	return c.synthesizer
}

// Relay composes the configured providers into a relay.
func (c *Config) Relay() (*relay.Relay, error) {
	options := []relay.Option{
		relay.WithCompleter(c.completer),
		relay.WithSynthesizer(c.synthesizer),
	}

	return relay.New(append(options, c.relayOptions...)...)
}

type configFile struct {
	Address string   `yaml:"address"`
	Origins []string `yaml:"origins"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Completer   providerConfig `yaml:"completer"`
	Synthesizer providerConfig `yaml:"synthesizer"`

	Voices map[string]string `yaml:"voices"`
}

func defaultConfigFile() *configFile {
	return &configFile{
		Address: ":8000",
		Origins: DefaultOrigins,

		Completer: providerConfig{
			Type:  "groq",
			Model: "llama-3.1-8b-instant",
		},

		Synthesizer: providerConfig{
			Type:    "elevenlabs",
			Model:   "eleven_monolingual_v1",
			Timeout: 30 * time.Second,
		},
	}
}

func parseFile(path string, config *configFile) error {
	data, err := os.ReadFile(path)

	if err != nil {
		return err
	}

	data = []byte(os.ExpandEnv(string(data)))

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(config); err != nil {
		return err
	}

	return nil
}

type envFile struct {
	Address string   `envconfig:"ADDRESS"`
	Origins []string `envconfig:"CORS_ORIGINS"`

	GroqAPIKey       string `envconfig:"GROQ_API_KEY"`
	ElevenLabsAPIKey string `envconfig:"ELEVENLABS_API_KEY"`
}

func applyEnv(config *configFile) error {
	var env envFile

	if err := envconfig.Process("", &env); err != nil {
		return err
	}

	if env.Address != "" {
		config.Address = env.Address
	}

	if len(env.Origins) > 0 {
		config.Origins = env.Origins
	}

	if env.GroqAPIKey != "" {
		config.Completer.Token = env.GroqAPIKey
	}

	if env.ElevenLabsAPIKey != "" {
		config.Synthesizer.Token = env.ElevenLabsAPIKey
	}

	return nil
}

func (f *configFile) validate() error {
	var errs []error

	if f.Completer.Token == "" {
		errs = append(errs, &ConfigurationError{Key: "GROQ_API_KEY"})
	}

	if f.Synthesizer.Token == "" {
		errs = append(errs, &ConfigurationError{Key: "ELEVENLABS_API_KEY"})
	}

	return errors.Join(errs...)
}
