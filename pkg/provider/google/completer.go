package google

import (
	"context"
	"strings"

	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx, options.Token)

	if err != nil {
		return nil, convertError(err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",

		SystemInstruction: convertSystem(messages),
		Temperature:       options.Temperature,
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, convertContents(messages), config)

	if err != nil {
		return nil, convertError(err)
	}

	return &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(strings.TrimSpace(resp.Text())),
			},
		},

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func convertSystem(messages []provider.Message) *genai.Content {
	var parts []*genai.Part

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		if text := m.Text(); text != "" {
			parts = append(parts, genai.NewPartFromText(text))
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return genai.NewContentFromParts(parts, "")
}

func convertContents(messages []provider.Message) []*genai.Content {
	var result []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleUser:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleUser))

		case provider.MessageRoleAssistant:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleModel))
		}
	}

	return result
}
