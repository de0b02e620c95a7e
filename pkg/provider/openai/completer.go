package openai

import (
	"context"
	"errors"

	"github.com/adrianliechti/avatar/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertCompletionRequest(messages, options)

	if err != nil {
		return nil, err
	}

	completion, err := c.completions.New(ctx, *req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	choice := completion.Choices[0]

	result := &provider.Completion{
		ID:     completion.ID,
		Model:  completion.Model,
		Reason: provider.CompletionReasonStop,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},
	}

	if val := toCompletionResult(choice.FinishReason); val != "" {
		result.Reason = val
	}

	if val := toUsage(completion.Usage); val != nil {
		result.Usage = val
	}

	if choice.Message.Content != "" {
		result.Message.Content = append(result.Message.Content, provider.TextContent(choice.Message.Content))
	}

	return result, nil
}

func (c *Completer) convertCompletionRequest(input []provider.Message, options *provider.CompleteOptions) (*openai.ChatCompletionNewParams, error) {
	messages, err := convertMessages(input)

	if err != nil {
		return nil, err
	}

	req := &openai.ChatCompletionNewParams{
		Model: c.model,
	}

	if len(messages) > 0 {
		req.Messages = messages
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	return req, nil
}

func convertMessages(input []provider.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Text()))

		case provider.MessageRoleUser:
			result = append(result, openai.UserMessage(m.Text()))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Text()))

		default:
			return nil, errors.New("unsupported message role: " + string(m.Role))
		}
	}

	return result, nil
}

func toCompletionResult(val string) provider.CompletionReason {
	switch val {
	case "stop":
		return provider.CompletionReasonStop

	case "length":
		return provider.CompletionReasonLength

	case "content_filter":
		return provider.CompletionReasonFilter

	default:
		return ""
	}
}

func toUsage(metadata openai.CompletionUsage) *provider.Usage {
	if metadata.TotalTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokens),
		OutputTokens: int(metadata.CompletionTokens),
	}
}
