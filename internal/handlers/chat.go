package handlers

import (
	"context"
	"net/http"

	"clara-backend/internal/middleware"
	"clara-backend/internal/models"
	"clara-backend/pkg/log"
)

type chatRelay interface {
	Chat(ctx context.Context, history []models.ChatMessage, question string) (string, error)
}

type ChatHandler struct {
	relay chatRelay
}

func NewChatHandler(relay chatRelay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(err.Error()))
		return
	}

	question := *req.UserQuestion
	log.Infow("Chat turn received",
		"user_id", *req.UserID,
		"history_len", len(req.ConversationHistory),
		"request_id", middleware.GetRequestID(r.Context()),
	)

	reply, err := h.relay.Chat(r.Context(), req.ConversationHistory, question)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:            reply,
		ConversationHistory: extendHistory(req.ConversationHistory, question, reply),
	})
}

// extendHistory returns a new slice holding history followed by the
// question and the reply. history itself is left untouched.
func extendHistory(history []models.ChatMessage, question, reply string) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(history)+2)
	out = append(out, history...)
	out = append(out,
		models.ChatMessage{Role: models.RoleUser, Content: question},
		models.ChatMessage{Role: models.RoleAssistant, Content: reply},
	)
	return out
}
