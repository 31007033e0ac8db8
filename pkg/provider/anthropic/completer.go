package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

const defaultMaxTokens = 8192

type Completer struct {
	*Config
	messages anthropic.MessageService
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
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: defaultMaxTokens,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.System = append(req.System, anthropic.TextBlockParam{Text: m.Text()})

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text())))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text())))
		}
	}

	message, err := c.messages.New(ctx, req, tokenOptions(options.Token)...)

	if err != nil {
		return nil, convertError(err)
	}

	var text strings.Builder

	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: string(message.Model),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(strings.TrimSpace(text.String())),
			},
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func convertError(err error) error {
	result := &provider.Error{
		Provider: "anthropic",

		Message: err.Error(),
		Err:     err,
	}

	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		result.Code = apierr.StatusCode
	}

	return result
}
