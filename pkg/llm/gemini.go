package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client              *genai.Client
	model               string
	maxCompletionTokens int
	temperature         float32
	maxRetries          int
}

func NewGeminiClient(config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	// Create the Gemini SDK client using the provided API key.
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &GeminiClient{
		client:              client,
		model:               config.Model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
		maxRetries:          config.MaxRetries,
	}, nil
}

func (c *GeminiClient) GenerateResponse(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to send to Gemini")
	}

	// Convert messages into Gemini contents; Gemini only knows the user and
	// model roles.
	geminiMessages := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		geminiMessages = append(geminiMessages, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	if len(geminiMessages) == 0 {
		return "", fmt.Errorf("no messages to send to Gemini")
	}

	model := c.client.GenerativeModel(c.model)
	maxTokens := int32(c.maxCompletionTokens)
	model.MaxOutputTokens = &maxTokens
	model.SetTemperature(c.temperature)

	// The last message is sent as the turn; everything before it is history.
	session := model.StartChat()
	session.History = geminiMessages[:len(geminiMessages)-1]
	lastParts := geminiMessages[len(geminiMessages)-1].Parts

	var result *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result, err = session.SendMessage(ctx, lastParts...)
		if err == nil {
			break
		}
		log.Printf("GenerateResponse -> attempt %d failed: %v", attempt+1, err)
		if ctx.Err() != nil {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("gemini API error: %v", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return fmt.Sprintf("%v", result.Candidates[0].Content.Parts[0]), nil
}

// GetModelInfo returns information about the Gemini model.
func (c *GeminiClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            "gemini",
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}
