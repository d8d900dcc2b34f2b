package router

import (
	"context"

	"dealership-concierge/pkg/log"
	"dealership-concierge/pkg/openai"
)

// Classifier is the interface for the route classification stage.
type Classifier interface {
	Classify(ctx context.Context, history []openai.Item) (*Result, error)
}

// RouteClassifier assigns a conversation to exactly one route using a
// schema-constrained model call.
type RouteClassifier struct {
	llm openai.IClient
	l   log.Logger
}

var _ Classifier = (*RouteClassifier)(nil)

// New creates a new RouteClassifier.
func New(llm openai.IClient, l log.Logger) *RouteClassifier {
	return &RouteClassifier{
		llm: llm,
		l:   l,
	}
}

// outputSchema builds the enumeration-constrained JSON schema from AllRoutes.
func outputSchema() map[string]interface{} {
	values := make([]string, len(AllRoutes))
	for i, r := range AllRoutes {
		values[i] = r.String()
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"rota": map[string]interface{}{
				"type": "string",
				"enum": values,
			},
		},
		"required":             []string{"rota"},
		"additionalProperties": false,
	}
}
