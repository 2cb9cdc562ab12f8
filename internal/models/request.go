package models

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	System   string    `json:"system,omitempty"`
	Model    string    `json:"model,omitempty"`
}

// ErrorDetail is the uniform failure body for every endpoint.
type ErrorDetail struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
