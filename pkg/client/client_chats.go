package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"slices"
)

type ChatService struct {
	Options []RequestOption
}

func NewChatService(opts ...RequestOption) ChatService {
	return ChatService{
		Options: opts,
	}
}

type ChatRequest struct {
	Message string `json:"message"`
	Voice   string `json:"voice,omitempty"`
}

type Chat struct {
	Text string

	Audio []byte
}

func (r *ChatService) New(ctx context.Context, input ChatRequest, opts ...RequestOption) (*Chat, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var result struct {
		Text  string `json:"text"`
		Audio string `json:"audio"`
	}

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	if result.Text == "" || result.Audio == "" {
		return nil, ErrInvalidResponse
	}

	audio, err := base64.StdEncoding.DecodeString(result.Audio)

	if err != nil {
		return nil, err
	}

	return &Chat{
		Text:  result.Text,
		Audio: audio,
	}, nil
}
