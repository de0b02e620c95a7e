package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/avatar/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer

	tokenUsageMetric        genaiconv.ClientTokenUsage
	operationDurationMetric genaiconv.ClientOperationDuration
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	meter := otel.Meter(instrumentationName)

	tokenUsageMetric, _ := genaiconv.NewClientTokenUsage(meter)
	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,

		tokenUsageMetric:        tokenUsageMetric,
		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := tracer().Start(ctx, "chat "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if result == nil {
		return nil, nil
	}

	duration := time.Since(timestamp).Seconds()

	providerName := genaiconv.ProviderNameAttr(p.provider)
	providerModel := p.model

	if result.Model != "" {
		providerModel = result.Model
	}

	p.operationDurationMetric.Record(ctx, duration,
		genaiconv.OperationNameChat,
		providerName,
		KeyValues([]KeyValue{
			p.operationDurationMetric.AttrRequestModel(p.model),
			p.operationDurationMetric.AttrResponseModel(providerModel),
		}, EndUserAttrs(ctx))...,
	)

	if result.Usage == nil {
		return result, nil
	}

	for _, usage := range []struct {
		tokens    int
		tokenType genaiconv.TokenTypeAttr
	}{
		{result.Usage.InputTokens, genaiconv.TokenTypeInput},
		{result.Usage.OutputTokens, genaiconv.TokenTypeOutput},
	} {
		if usage.tokens <= 0 {
			continue
		}

		p.tokenUsageMetric.Record(ctx, int64(usage.tokens),
			genaiconv.OperationNameChat,
			providerName,
			usage.tokenType,
			KeyValues([]KeyValue{
				p.tokenUsageMetric.AttrRequestModel(p.model),
				p.tokenUsageMetric.AttrResponseModel(providerModel),
			}, EndUserAttrs(ctx))...,
		)
	}

	return result, nil
}
