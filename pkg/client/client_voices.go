package client

import (
	"context"
	"net/http"
	"slices"
)

type VoiceService struct {
	Options []RequestOption
}

func NewVoiceService(opts ...RequestOption) VoiceService {
	return VoiceService{
		Options: opts,
	}
}

type Voices struct {
	Voices  []string `json:"voices"`
	Default string   `json:"default"`
}

func (r *VoiceService) List(ctx context.Context, opts ...RequestOption) (*Voices, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/voices", nil)

	var result Voices

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type HealthService struct {
	Options []RequestOption
}

func NewHealthService(opts ...RequestOption) HealthService {
	return HealthService{
		Options: opts,
	}
}

type Health struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (r *HealthService) Get(ctx context.Context, opts ...RequestOption) (*Health, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/", nil)

	var result Health

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
