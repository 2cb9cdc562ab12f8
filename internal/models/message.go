package models

// Role names follow the common chat convention. Incoming roles are free-form
// strings; these constants cover the values the server itself produces.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn of chat history. Nothing outlives the request that
// carried it.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
