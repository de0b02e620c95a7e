package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	// Voice is a symbolic voice name. Providers resolve it to their own
	// voice identifiers and fall back to their default voice.
	Voice string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}
