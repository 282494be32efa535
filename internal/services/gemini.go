package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"clara-backend/internal/models"
)

const (
	geminiRoleUser  = "user"
	geminiRoleModel = "model"
)

// claraPreamble is sent as the first model turn of every conversation. The
// word limit is an instruction to the model only; replies are not trimmed.
const claraPreamble = `You are Clara, a warm and patient companion for older adults living with memory loss. ` +
	`Speak simply and kindly, use short sentences, and never argue or correct harshly. ` +
	`Gently remind the user of familiar people, places, and routines when it helps them feel safe. ` +
	`If the user seems confused, lost, or in distress, calmly suggest contacting a family member or caregiver. ` +
	`Keep every reply under 50 words.`

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Chat sends one conversational turn to Gemini and returns the reply text
// verbatim. Provider failures are returned as *UpstreamError.
func (s *GeminiService) Chat(ctx context.Context, history []models.ChatMessage, question string) (string, error) {
	contents := buildChatContents(history, question)
	last := contents[len(contents)-1]

	cs := s.model.StartChat()
	cs.History = contents[:len(contents)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}

	return extractText(resp), nil
}

// buildChatContents lays out the provider message list: preamble, caller
// history, then the new question. Any role other than "user" is sent as
// the model role.
func buildChatContents(history []models.ChatMessage, question string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+2)
	contents = append(contents, &genai.Content{
		Role:  geminiRoleModel,
		Parts: []genai.Part{genai.Text(claraPreamble)},
	})

	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  normalizeRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	contents = append(contents, &genai.Content{
		Role:  geminiRoleUser,
		Parts: []genai.Part{genai.Text(question)},
	})
	return contents
}

func normalizeRole(role string) string {
	if role == models.RoleUser {
		return geminiRoleUser
	}
	return geminiRoleModel
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
