package llm

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client              *openai.Client
	model               string
	maxCompletionTokens int
	temperature         float32
	maxRetries          int
}

func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(config.APIKey)
	model := config.Model
	if model == "" {
		model = openai.GPT4
	}

	temperature := config.Temperature
	if temperature == 0 {
		// go-openai omits a zero temperature from the request body, so the
		// API would sample at its own default instead. The smallest
		// non-zero float32 survives marshaling and is zero for sampling
		// purposes.
		temperature = math.SmallestNonzeroFloat32
	}

	return &OpenAIClient{
		client:              client,
		model:               model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         temperature,
		maxRetries:          config.MaxRetries,
	}, nil
}

func (c *OpenAIClient) newChatCompletionRequest(messages []Message) openai.ChatCompletionRequest {
	// Convert messages to OpenAI format
	openAIMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		openAIMessages = append(openAIMessages, openai.ChatCompletionMessage{
			Role:    mapRole(msg.Role),
			Content: msg.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:               c.model,
		Messages:            openAIMessages,
		MaxCompletionTokens: c.maxCompletionTokens,
		Temperature:         c.temperature,
	}
}

func (c *OpenAIClient) GenerateResponse(ctx context.Context, messages []Message) (string, error) {
	req := c.newChatCompletionRequest(messages)

	var resp openai.ChatCompletionResponse
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err = c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}
		log.Printf("GenerateResponse -> attempt %d failed: %v", attempt+1, err)
		if ctx.Err() != nil {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            "openai",
		MaxCompletionTokens: c.maxCompletionTokens,
		ContextLimit:        getModelContextLimit(c.model),
	}
}

// Helper functions
func mapRole(role string) string {
	switch strings.ToLower(role) {
	case "user":
		return "user"
	case "assistant":
		return "assistant"
	case "system":
		return "system"
	default:
		return "user"
	}
}

func getModelContextLimit(model string) int {
	switch model {
	case openai.GPT4TurboPreview, openai.GPT4o:
		return 128000 // 128k tokens
	case openai.GPT4:
		return 8192 // 8k tokens
	case openai.GPT3Dot5Turbo:
		return 4096 // 4k tokens
	default:
		return 4096
	}
}
