package openai

// Request is the body for the Responses API create call.
type Request struct {
	Model           string      `json:"model"`
	Instructions    string      `json:"instructions,omitempty"`
	Input           []Item      `json:"input"`
	Tools           []Tool      `json:"tools,omitempty"`
	Text            *TextConfig `json:"text,omitempty"`
	Temperature     *float64    `json:"temperature,omitempty"`
	TopP            *float64    `json:"top_p,omitempty"`
	MaxOutputTokens int         `json:"max_output_tokens,omitempty"`
	Reasoning       *Reasoning  `json:"reasoning,omitempty"`
	Store           bool        `json:"store,omitempty"`
}

// Item is one input item: a role-tagged message or a function-call exchange.
type Item struct {
	Type    string        `json:"type,omitempty"` // message | function_call | function_call_output
	Role    string        `json:"role,omitempty"`
	Content []ContentPart `json:"content,omitempty"`

	// function_call / function_call_output fields
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	CallID    string `json:"call_id,omitempty"`
	Output    string `json:"output,omitempty"`
}

// ContentPart is one content block inside a message item.
type ContentPart struct {
	Type string `json:"type"` // input_text | output_text
	Text string `json:"text"`
}

// Tool declares one capability available to the model.
type Tool struct {
	Type string `json:"type"` // web_search | file_search | function

	// web_search
	SearchContextSize string             `json:"search_context_size,omitempty"`
	Filters           *WebSearchFilters  `json:"filters,omitempty"`
	UserLocation      *WebSearchLocation `json:"user_location,omitempty"`

	// file_search
	VectorStoreIDs []string `json:"vector_store_ids,omitempty"`

	// function
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	Strict      bool                   `json:"strict,omitempty"`
}

// WebSearchFilters restricts web search results by domain.
type WebSearchFilters struct {
	AllowedDomains []string `json:"allowed_domains,omitempty"`
}

// WebSearchLocation hints the user's location to the search tool.
type WebSearchLocation struct {
	Type    string `json:"type"` // approximate
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// TextConfig constrains the shape of the model's text output.
type TextConfig struct {
	Format *TextFormat `json:"format,omitempty"`
}

// TextFormat is a structured-output declaration (json_schema).
type TextFormat struct {
	Type   string                 `json:"type"` // json_schema | text
	Name   string                 `json:"name,omitempty"`
	Schema map[string]interface{} `json:"schema,omitempty"`
	Strict bool                   `json:"strict,omitempty"`
}

// Reasoning holds parameters for reasoning-tier models.
type Reasoning struct {
	Effort string `json:"effort,omitempty"` // low | medium | high
}

// Response is the Responses API result.
type Response struct {
	ID     string       `json:"id"`
	Model  string       `json:"model"`
	Status string       `json:"status"`
	Output []OutputItem `json:"output"`
	Error  *APIError    `json:"error,omitempty"`
	Usage  *Usage       `json:"usage,omitempty"`
}

// OutputItem is one item in the response output array.
type OutputItem struct {
	Type    string        `json:"type"` // message | function_call | web_search_call | file_search_call | reasoning
	ID      string        `json:"id,omitempty"`
	Role    string        `json:"role,omitempty"`
	Status  string        `json:"status,omitempty"`
	Content []ContentPart `json:"content,omitempty"`

	// function_call fields
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	CallID    string `json:"call_id,omitempty"`
}

// APIError is the error object embedded in a failed response.
type APIError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Usage reports token accounting for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// OutputText concatenates the text of all assistant message items.
func (r *Response) OutputText() string {
	if r == nil {
		return ""
	}
	var text string
	for _, item := range r.Output {
		if item.Type != OutputTypeMessage {
			continue
		}
		for _, part := range item.Content {
			if part.Type == ContentTypeOutputText {
				text += part.Text
			}
		}
	}
	return text
}

// FunctionCalls returns the function_call items of the response, if any.
func (r *Response) FunctionCalls() []OutputItem {
	if r == nil {
		return nil
	}
	var calls []OutputItem
	for _, item := range r.Output {
		if item.Type == OutputTypeFunctionCall {
			calls = append(calls, item)
		}
	}
	return calls
}
