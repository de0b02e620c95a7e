package config

import (
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyTransport() (*http.Transport, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()

	if cfg == nil || cfg.URL == "" {
		return tr, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr.Proxy = http.ProxyURL(proxyURL)

	return tr, nil
}

// httpClient returns an instrumented client for outbound provider calls.
// A zero timeout means no client-side limit.
func (cfg *proxyConfig) httpClient(timeout time.Duration) (*http.Client, error) {
	transport, err := cfg.proxyTransport()

	if err != nil {
		return nil, err
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(transport),
	}, nil
}
