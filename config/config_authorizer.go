package config

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/avatar/pkg/auth"
	"github.com/adrianliechti/avatar/pkg/auth/oidc"
	"github.com/adrianliechti/avatar/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "static":
		return staticAuthorizer(cfg)

	case "oidc":
		return oidcAuthorizer(cfg)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}

func staticAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	if cfg.Token == "" {
		return nil, errors.New("static authorizer requires a token")
	}

	return static.New(cfg.Token)
}

func oidcAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("oidc authorizer requires an issuer")
	}

	return oidc.New(context.Background(), cfg.Issuer, cfg.Audience)
}
