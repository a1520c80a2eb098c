package client

import (
	"context"
	"fmt"
	"strings"

	"zapagenda/pkg/model"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Completion is the text-completion collaborator. The engine treats it as an
// opaque function from conversation to reply text.
type Completion interface {
	Complete(ctx context.Context, systemPrompt string, history []model.Message) (string, error)
}

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

var _ Completion = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete sends the history as a chat turn. The last message must be the
// user's; earlier messages become chat history with assistant turns mapped
// to the "model" role.
func (g *GeminiClient) Complete(ctx context.Context, systemPrompt string, history []model.Message) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("gemini: empty history")
	}

	m := g.client.GenerativeModel(g.modelName)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	cs := m.StartChat()
	last := history[len(history)-1]
	for _, msg := range history[:len(history)-1] {
		role := "user"
		if msg.Role == model.RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
