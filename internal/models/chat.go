package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. UserID and
// UserQuestion are pointers so that an empty question is accepted while a
// missing one is rejected.
type ChatRequest struct {
	UserID              *string        `json:"user_id" validate:"required"`
	UserData            map[string]any `json:"user_data"`
	ConversationHistory []ChatMessage  `json:"conversation_history"`
	UserQuestion        *string        `json:"user_question" validate:"required"`
}

// ChatResponse is the reply from the AI chat together with the extended history.
type ChatResponse struct {
	Response            string        `json:"response"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}
