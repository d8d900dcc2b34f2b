package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dealership-concierge/pkg/openai"
)

// Classify invokes the classifier model over the full conversation history and
// returns exactly one route from the closed enumeration. The model call is
// schema-constrained; free-text parsing of a route out of prose is not
// attempted. Any deviation surfaces as a *ClassificationError.
func (c *RouteClassifier) Classify(ctx context.Context, history []openai.Item) (*Result, error) {
	if len(history) == 0 {
		return nil, &ClassificationError{Err: errors.New(ErrMsgMissingHistory)}
	}

	req := &openai.Request{
		Model:           ClassifierModel,
		Instructions:    PromptClassifier,
		Input:           history,
		Temperature:     &ClassifierTemperature,
		TopP:            &ClassifierTopP,
		MaxOutputTokens: ClassifierMaxTokens,
		Text: &openai.TextConfig{
			Format: &openai.TextFormat{
				Type:   "json_schema",
				Name:   SchemaName,
				Schema: outputSchema(),
				Strict: true,
			},
		},
	}

	resp, err := c.llm.CreateResponse(ctx, req)
	if err != nil {
		return nil, &ClassificationError{Err: fmt.Errorf("%s: %w", ErrMsgLLMCallFailed, err)}
	}

	raw := resp.OutputText()
	if raw == "" {
		return nil, &ClassificationError{Err: errors.New(ErrMsgEmptyOutput)}
	}

	var parsed routeOutput
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &ClassificationError{Output: raw, Err: fmt.Errorf("%s: %w", ErrMsgParseFailed, err)}
	}

	route := Route(parsed.Rota)
	if !route.IsValid() {
		return nil, &ClassificationError{Output: raw, Err: errors.New(ErrMsgUnknownRoute)}
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, route)

	return &Result{
		Route:    route,
		NewItems: newItemsFromResponse(resp),
		Raw:      resp,
	}, nil
}

// newItemsFromResponse converts the classifier's output items into history
// turns so downstream responders see that the routing decision was made.
func newItemsFromResponse(resp *openai.Response) []openai.Item {
	var items []openai.Item
	for _, out := range resp.Output {
		if out.Type != openai.OutputTypeMessage {
			continue
		}
		items = append(items, openai.Item{
			Type:    openai.ItemTypeMessage,
			Role:    openai.RoleAssistant,
			Content: out.Content,
		})
	}
	return items
}
