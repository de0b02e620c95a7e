package openai

import (
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		if msg := strings.TrimSpace(apierr.Message); msg != "" {
			return errors.New(msg)
		}
	}

	return err
}
