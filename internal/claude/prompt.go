package claude

import (
	"strings"
	"unicode"

	"github.com/erikmaday/clauditorium/internal/models"
)

// BuildPrompt flattens a chat history into the single prompt string the CLI
// accepts. An optional system prompt becomes a leading "System: ..." line
// separated from the history by a blank line; each message becomes one
// "<Role>: <content>" line with the role capitalized. Content is passed
// through verbatim, no escaping.
func BuildPrompt(messages []models.Message, system string) string {
	parts := make([]string, 0, len(messages)+1)
	if system != "" {
		parts = append(parts, "System: "+system+"\n")
	}
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = models.RoleUser
		}
		parts = append(parts, capitalize(role)+": "+msg.Content)
	}
	return strings.Join(parts, "\n")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
