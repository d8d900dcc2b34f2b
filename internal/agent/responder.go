package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/log"
	"dealership-concierge/pkg/openai"
)

// MaxToolSteps bounds the responder's tool loop so a misbehaving model cannot
// spin forever.
const MaxToolSteps = 5

// Responder is one configured conversational agent, bound to exactly one route.
type Responder struct {
	cfg   Config
	llm   openai.IClient
	tools map[string]Tool
	l     log.Logger
}

// NewResponder creates a responder from its config and optional function tools.
func NewResponder(cfg Config, llm openai.IClient, l log.Logger, tools ...Tool) *Responder {
	toolMap := make(map[string]Tool, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
	}
	return &Responder{
		cfg:   cfg,
		llm:   llm,
		tools: toolMap,
		l:     l,
	}
}

// Route returns the route this responder is bound to.
func (r *Responder) Route() router.Route {
	return r.cfg.Route
}

// Name returns the responder's display name.
func (r *Responder) Name() string {
	return r.cfg.Name
}

// Run invokes the responder over the conversation history, executing function
// tools until the model settles on a final text reply. An empty final reply is
// a *ResponderError, never a successful empty string.
func (r *Responder) Run(ctx context.Context, history []openai.Item) (*RunResult, error) {
	input := make([]openai.Item, len(history))
	copy(input, history)

	var newItems []openai.Item

	for step := 0; step < MaxToolSteps; step++ {
		resp, err := r.llm.CreateResponse(ctx, r.buildRequest(input))
		if err != nil {
			return nil, r.fail(fmt.Errorf("LLM call failed at step %d: %w", step+1, err))
		}

		produced := itemsFromResponse(resp)
		input = append(input, produced...)
		newItems = append(newItems, produced...)

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			text := resp.OutputText()
			if text == "" {
				return nil, r.fail(ErrEmptyOutput)
			}
			if r.cfg.WebSearch != nil && len(r.cfg.WebSearch.AllowedDomains) > 0 {
				text = FilterAllowedDomains(text, r.cfg.WebSearch.AllowedDomains)
				if text == "" {
					return nil, r.fail(ErrEmptyOutput)
				}
			}
			return &RunResult{
				OutputText: text,
				NewItems:   newItems,
				Raw:        resp,
			}, nil
		}

		// Execute each requested tool and feed the outputs back.
		for _, call := range calls {
			outputItem := r.executeCall(ctx, call)
			input = append(input, outputItem)
			newItems = append(newItems, outputItem)
		}
	}

	return nil, r.fail(fmt.Errorf("tool loop exceeded %d steps", MaxToolSteps))
}

// executeCall runs one function tool and wraps its result as a history item.
// Tool errors are reported back to the model rather than aborting the run,
// so it can explain the failure to the user.
func (r *Responder) executeCall(ctx context.Context, call openai.OutputItem) openai.Item {
	var result interface{}

	tool, ok := r.tools[call.Name]
	if !ok {
		r.l.Errorf(ctx, "responder %s: tool %s not found", r.cfg.Name, call.Name)
		result = map[string]string{"error": "tool not found"}
	} else {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			r.l.Errorf(ctx, "responder %s: tool %s bad arguments: %v", r.cfg.Name, call.Name, err)
			result = map[string]string{"error": "invalid arguments"}
		} else {
			res, err := tool.Execute(ctx, args)
			if err != nil {
				r.l.Errorf(ctx, "responder %s: tool %s failed: %v", r.cfg.Name, call.Name, err)
				result = map[string]string{"error": err.Error()}
			} else {
				result = res
			}
		}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		payload = []byte(`{"error":"unserializable tool result"}`)
	}

	return openai.Item{
		Type:   openai.ItemTypeFunctionCallOutput,
		CallID: call.CallID,
		Output: string(payload),
	}
}

// buildRequest assembles the model invocation from the responder's config.
func (r *Responder) buildRequest(input []openai.Item) *openai.Request {
	req := &openai.Request{
		Model:           r.cfg.Model,
		Instructions:    r.cfg.Instructions,
		Input:           input,
		Temperature:     r.cfg.Temperature,
		TopP:            r.cfg.TopP,
		MaxOutputTokens: r.cfg.MaxOutputTokens,
	}

	if r.cfg.ReasoningEffort != "" {
		req.Reasoning = &openai.Reasoning{Effort: r.cfg.ReasoningEffort}
	}

	if r.cfg.WebSearch != nil {
		tool := openai.Tool{
			Type:              openai.ToolTypeWebSearch,
			SearchContextSize: r.cfg.WebSearch.ContextSize,
			UserLocation:      &openai.WebSearchLocation{Type: "approximate"},
		}
		if len(r.cfg.WebSearch.AllowedDomains) > 0 {
			tool.Filters = &openai.WebSearchFilters{AllowedDomains: r.cfg.WebSearch.AllowedDomains}
		}
		req.Tools = append(req.Tools, tool)
	}

	if r.cfg.FileSearch != nil {
		req.Tools = append(req.Tools, openai.Tool{
			Type:           openai.ToolTypeFileSearch,
			VectorStoreIDs: r.cfg.FileSearch.VectorStoreIDs,
		})
	}

	for _, t := range r.tools {
		req.Tools = append(req.Tools, openai.Tool{
			Type:        openai.ToolTypeFunction,
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}

	return req
}

func (r *Responder) fail(err error) error {
	return &ResponderError{Route: r.cfg.Route, Name: r.cfg.Name, Err: err}
}

// itemsFromResponse converts response output into replayable history items.
// Hosted tool-call traces are not replayable and are skipped.
func itemsFromResponse(resp *openai.Response) []openai.Item {
	var items []openai.Item
	for _, out := range resp.Output {
		switch out.Type {
		case openai.OutputTypeMessage:
			items = append(items, openai.Item{
				Type:    openai.ItemTypeMessage,
				Role:    openai.RoleAssistant,
				Content: out.Content,
			})
		case openai.OutputTypeFunctionCall:
			items = append(items, openai.Item{
				Type:      openai.ItemTypeFunctionCall,
				Name:      out.Name,
				Arguments: out.Arguments,
				CallID:    out.CallID,
			})
		}
	}
	return items
}
