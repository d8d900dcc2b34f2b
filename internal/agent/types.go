package agent

import (
	"context"

	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/openai"
)

// History is the ordered, append-only conversation state threaded through one
// request. It is owned by the orchestrator for the request's lifetime; any
// persistence across requests belongs to the CRM collaborator, which re-injects
// prior turns as a seed.
type History []openai.Item

// NewHistory seeds a conversation with one user turn.
func NewHistory(userText string) History {
	return History{UserTurn(userText)}
}

// Clone returns an independent copy so callers never share backing arrays.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}

// Append returns h extended with items. The receiver is not mutated in place
// beyond normal slice semantics; callers keep the returned value.
func (h History) Append(items ...openai.Item) History {
	return append(h, items...)
}

// UserTurn builds a user message turn.
func UserTurn(text string) openai.Item {
	return openai.Item{
		Type: openai.ItemTypeMessage,
		Role: openai.RoleUser,
		Content: []openai.ContentPart{
			{Type: openai.ContentTypeInputText, Text: text},
		},
	}
}

// AssistantTurn builds an assistant message turn.
func AssistantTurn(text string) openai.Item {
	return openai.Item{
		Type: openai.ItemTypeMessage,
		Role: openai.RoleAssistant,
		Content: []openai.ContentPart{
			{Type: openai.ContentTypeOutputText, Text: text},
		},
	}
}

// RunResult is the output of invoking one responder.
type RunResult struct {
	// OutputText is the responder's final reply text, guaranteed non-empty.
	OutputText string

	// NewItems are the turns the responder produced, already appended to the
	// history it was run against by the orchestrator.
	NewItems []openai.Item

	// Raw is the last model response of the run.
	Raw *openai.Response
}

// Tool is a function capability a responder may call during its run.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// WebSearchConfig enables the hosted web search tool for a responder.
type WebSearchConfig struct {
	// AllowedDomains restricts acceptable results; anything resolving outside
	// these domains is discarded from the final output.
	AllowedDomains []string
	ContextSize    string
}

// FileSearchConfig enables the hosted document search tool for a responder.
type FileSearchConfig struct {
	VectorStoreIDs []string
}

// Config describes one responder. Built once at startup, read-only afterwards.
type Config struct {
	Name            string
	Route           router.Route
	Model           string
	Instructions    string
	Temperature     *float64
	TopP            *float64
	MaxOutputTokens int
	ReasoningEffort string

	WebSearch  *WebSearchConfig
	FileSearch *FileSearchConfig
}
