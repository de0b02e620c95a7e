package elevenlabs

import (
	"net/http"

	"github.com/adrianliechti/avatar/pkg/voice"
)

type Config struct {
	url string

	token string
	model string

	voices *voice.Map

	stability       float64
	similarityBoost float64

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func WithVoices(voices *voice.Map) Option {
	return func(c *Config) {
		c.voices = voices
	}
}

func WithVoiceSettings(stability, similarityBoost float64) Option {
	return func(c *Config) {
		c.stability = stability
		c.similarityBoost = similarityBoost
	}
}
