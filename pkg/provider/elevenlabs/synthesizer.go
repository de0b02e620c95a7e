package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/adrianliechti/avatar/pkg/provider"
	"github.com/adrianliechti/avatar/pkg/voice"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	if url == "" {
		url = "https://api.elevenlabs.io"
	}

	if model == "" {
		model = "eleven_monolingual_v1"
	}

	cfg := &Config{
		url:   url,
		model: model,

		stability:       0.5,
		similarityBoost: 0.5,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.voices == nil {
		cfg.voices = voice.New(nil)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voiceID := s.voices.Resolve(options.Voice)

	type voiceSettings struct {
		Stability       float64 `json:"stability"`
		SimilarityBoost float64 `json:"similarity_boost"`
	}

	type bodyType struct {
		Text    string `json:"text"`
		ModelID string `json:"model_id"`

		VoiceSettings voiceSettings `json:"voice_settings"`
	}

	body := bodyType{
		Text:    content,
		ModelID: s.model,

		VoiceSettings: voiceSettings{
			Stability:       s.stability,
			SimilarityBoost: s.similarityBoost,
		},
	}

	data, err := json.Marshal(body)

	if err != nil {
		return nil, err
	}

	u, err := url.JoinPath(s.url, "/v1/text-to-speech", voiceID)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.token)

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	audio, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if len(audio) == 0 {
		return nil, errors.New("ElevenLabs API error: empty audio response")
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = "audio/mpeg"
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     audio,
		ContentType: contentType,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New("ElevenLabs API error: " + http.StatusText(resp.StatusCode))
	}

	return errors.New("ElevenLabs API error: " + string(data))
}
