package otel

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/provider"

	"go.opentelemetry.io/otel/attribute"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := tracer().Start(ctx, "synthesize "+p.model)
	defer span.End()

	span.SetAttributes(
		attribute.String("gen_ai.provider.name", p.provider),
		attribute.String("gen_ai.request.model", p.model),
		attribute.Int("synthesis.input.length", len(content)),
	)

	if options != nil && options.Voice != "" {
		span.SetAttributes(attribute.String("synthesis.voice", options.Voice))
	}

	result, err := p.synthesizer.Synthesize(ctx, content, options)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if result == nil {
		return nil, nil
	}

	span.SetAttributes(attribute.Int("synthesis.output.bytes", len(result.Content)))

	return result, nil
}
