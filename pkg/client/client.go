package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
)

type Client struct {
	Chats  ChatService
	Voices VoiceService
	Health HealthService
}

func New(url string, opts ...RequestOption) *Client {
	opts = slices.Concat(opts, []RequestOption{WithURL(url)})

	return &Client{
		Chats:  NewChatService(opts...),
		Voices: NewVoiceService(opts...),
		Health: NewHealthService(opts...),
	}
}

type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RequestConfig) do(req *http.Request, result any) error {
	req.Header.Set("Accept", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// Error is returned for non-200 responses of the relay service.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return e.Detail
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var body struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return &Error{StatusCode: resp.StatusCode, Detail: body.Detail}
	}

	if len(data) == 0 {
		return &Error{StatusCode: resp.StatusCode, Detail: resp.Status}
	}

	return &Error{StatusCode: resp.StatusCode, Detail: string(data)}
}

var ErrInvalidResponse = errors.New("invalid response from server")
