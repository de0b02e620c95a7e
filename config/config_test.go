package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()

	for _, key := range []string{"ADDRESS", "CORS_ORIGINS", "GROQ_API_KEY", "ELEVENLABS_API_KEY"} {
		t.Setenv(key, values[key])
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestParseFromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"GROQ_API_KEY":       "gsk_test",
		"ELEVENLABS_API_KEY": "xi_test",
	})

	cfg, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.Address)
	require.Equal(t, DefaultOrigins, cfg.Origins)
	require.Empty(t, cfg.Authorizers)

	require.NotNil(t, cfg.Completer())
	require.NotNil(t, cfg.Synthesizer())

	require.Equal(t, []string{"alloy", "default", "energetic", "warm"}, cfg.Voices.Names())

	r, err := cfg.Relay()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestParseMissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		missing []string
	}{
		{
			name:    "both",
			env:     map[string]string{},
			missing: []string{"GROQ_API_KEY", "ELEVENLABS_API_KEY"},
		},
		{
			name:    "completion",
			env:     map[string]string{"ELEVENLABS_API_KEY": "xi_test"},
			missing: []string{"GROQ_API_KEY"},
		},
		{
			name:    "synthesis",
			env:     map[string]string{"GROQ_API_KEY": "gsk_test"},
			missing: []string{"ELEVENLABS_API_KEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Parse("")
			require.Nil(t, cfg)

			var configErr *ConfigurationError
			require.ErrorAs(t, err, &configErr)

			for _, key := range tt.missing {
				require.Contains(t, err.Error(), key)
			}
		})
	}
}

func TestParseEnvOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"ADDRESS":            ":9000",
		"CORS_ORIGINS":       "https://avatar.example.com,https://www.example.com",
		"GROQ_API_KEY":       "gsk_test",
		"ELEVENLABS_API_KEY": "xi_test",
	})

	cfg, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Address)
	require.Equal(t, []string{"https://avatar.example.com", "https://www.example.com"}, cfg.Origins)
}

func TestParseFile(t *testing.T) {
	setEnv(t, map[string]string{
		"GROQ_API_KEY": "gsk_from_env",
	})

	path := writeFile(t, `
address: ":8080"

origins:
  - https://avatar.example.com

authorizers:
  - type: static
    token: secret

completer:
  model: llama-3.3-70b-versatile
  temperature: 0.3
  max_tokens: 80

synthesizer:
  token: xi_from_file
  timeout: 10s
  stability: 0.7

voices:
  calm: calm-voice-id
`)

	file := defaultConfigFile()
	require.NoError(t, parseFile(path, file))

	require.Equal(t, "groq", file.Completer.Type)
	require.Equal(t, "llama-3.3-70b-versatile", file.Completer.Model)
	require.InDelta(t, 0.3, *file.Completer.Temperature, 0.0001)
	require.Equal(t, 80, *file.Completer.MaxTokens)

	require.Equal(t, "elevenlabs", file.Synthesizer.Type)
	require.Equal(t, 10*time.Second, file.Synthesizer.Timeout)

	cfg, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, []string{"https://avatar.example.com"}, cfg.Origins)
	require.Len(t, cfg.Authorizers, 1)
	require.Len(t, cfg.relayOptions, 2)

	require.Equal(t, "calm-voice-id", cfg.Voices.Resolve("calm"))
	require.Contains(t, cfg.Voices.Names(), "default")
}

func TestDefaultTimeouts(t *testing.T) {
	file := defaultConfigFile()

	require.Equal(t, 30*time.Second, file.Synthesizer.Timeout)
	require.Zero(t, file.Completer.Timeout)

	client, err := file.Synthesizer.httpClient()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, client.Timeout)

	client, err = file.Completer.httpClient()
	require.NoError(t, err)
	require.Zero(t, client.Timeout)

	path := writeFile(t, `
synthesizer:
  token: xi_from_file
`)

	file = defaultConfigFile()
	require.NoError(t, parseFile(path, file))

	client, err = file.Synthesizer.httpClient()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, client.Timeout)
}

func TestParseFileExpandsEnv(t *testing.T) {
	setEnv(t, map[string]string{})
	t.Setenv("AVATAR_TEST_GROQ", "gsk_expanded")
	t.Setenv("AVATAR_TEST_XI", "xi_expanded")

	path := writeFile(t, `
completer:
  token: ${AVATAR_TEST_GROQ}
synthesizer:
  token: ${AVATAR_TEST_XI}
`)

	file := defaultConfigFile()
	require.NoError(t, parseFile(path, file))

	require.Equal(t, "gsk_expanded", file.Completer.Token)
	require.Equal(t, "xi_expanded", file.Synthesizer.Token)
}

func TestParseFileUnknownField(t *testing.T) {
	path := writeFile(t, `
unknown: true
`)

	require.Error(t, parseFile(path, defaultConfigFile()))
}

func TestParseInvalidTypes(t *testing.T) {
	setEnv(t, map[string]string{
		"GROQ_API_KEY":       "gsk_test",
		"ELEVENLABS_API_KEY": "xi_test",
	})

	_, err := Parse(writeFile(t, "completer:\n  type: unknown\n"))
	require.ErrorContains(t, err, "invalid completer type")

	_, err = Parse(writeFile(t, "synthesizer:\n  type: unknown\n"))
	require.ErrorContains(t, err, "invalid synthesizer type")

	_, err = Parse(writeFile(t, "authorizers:\n  - type: unknown\n"))
	require.ErrorContains(t, err, "invalid authorizer type")
}

func TestHTTPClient(t *testing.T) {
	var proxy *proxyConfig

	client, err := proxy.httpClient(30 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, client.Timeout)

	proxy = &proxyConfig{URL: "http://proxy.local:3128"}

	client, err = proxy.httpClient(0)
	require.NoError(t, err)
	require.Zero(t, client.Timeout)
	require.NotNil(t, client.Transport)
}
