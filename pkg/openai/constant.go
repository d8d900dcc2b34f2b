package openai

import "time"

const (
	// DefaultAPIURL is the default OpenAI API endpoint.
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)

// Item and content part types.
const (
	ItemTypeMessage            = "message"
	ItemTypeFunctionCall       = "function_call"
	ItemTypeFunctionCallOutput = "function_call_output"

	ContentTypeInputText  = "input_text"
	ContentTypeOutputText = "output_text"

	OutputTypeMessage      = "message"
	OutputTypeFunctionCall = "function_call"
)

// Roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Tool types.
const (
	ToolTypeWebSearch  = "web_search"
	ToolTypeFileSearch = "file_search"
	ToolTypeFunction   = "function"
)
