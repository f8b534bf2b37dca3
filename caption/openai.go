package caption

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultAIModel is the chat model used when none is configured.
const DefaultAIModel = openai.GPT4oMini

const aiRequestTimeout = 30 * time.Second

// AIProviderConfig holds configuration for the OpenAI caption provider.
type AIProviderConfig struct {
	// APIKey is the OpenAI or compatible API key.
	APIKey string

	// BaseURL overrides the API endpoint, for compatible local servers.
	BaseURL string

	// Model is the chat model name. Empty selects DefaultAIModel.
	Model string
}

// AIProvider generates captions with a chat model instead of the local
// phrase pools. The phrase-pool Generator stays the fallback when the
// model call fails, so posting never blocks on the API.
type AIProvider struct {
	client   *openai.Client
	model    string
	fallback *Generator
}

// NewAIProvider creates a caption provider backed by the OpenAI API.
func NewAIProvider(cfg AIProviderConfig, fallback *Generator) *AIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAIModel
	}

	return &AIProvider{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		fallback: fallback,
	}
}

// Caption asks the model for a short surreal caption in the voice the
// phrase pools establish. On any API error the phrase-pool fallback is
// used and the error is returned alongside the usable caption.
func (p *AIProvider) Caption(ctx context.Context, style string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Write one short surreal caption for an abstract generative artwork in the %s style. "+
			"Mix geometry with emotion, stay under 30 words, no hashtags, no quotes.",
		strings.ReplaceAll(style, "_", " "))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write terse, surreal art captions. Respond with the caption only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   80,
		Temperature: 1.1,
	})
	if err != nil {
		opts := DefaultOptions()
		opts.Style = style
		return p.fallback.Caption(opts), fmt.Errorf("caption: chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		opts := DefaultOptions()
		opts.Style = style
		return p.fallback.Caption(opts), fmt.Errorf("caption: model returned empty response")
	}

	return strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), `"`), nil
}
