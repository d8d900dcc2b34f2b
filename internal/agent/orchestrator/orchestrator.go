package orchestrator

import (
	"context"
	"strings"

	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/openai"
)

// Result is the outcome of one executed pipeline.
type Result struct {
	// Route is the route the classifier committed to.
	Route router.Route

	// OutputText is the responder's final reply, already extracted to plain
	// text. The transport layer wraps it in its own envelope.
	OutputText string

	// History is the full conversation state after both stages ran: seed turns,
	// the user turn, the classifier's turns and the responder's turns, in order.
	History agent.History
}

// Execute runs the pipeline for one inbound message: seed history with the
// user turn, classify, look up the responder, run it. Failures from any stage
// propagate typed; no retries and no route guessing happen here.
func (o *Orchestrator) Execute(ctx context.Context, userText string, seed agent.History) (*Result, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, ErrEmptyInput
	}

	history := seed.Clone().Append(agent.UserTurn(userText))

	classifyCtx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	classification, err := o.classifier.Classify(classifyCtx, history)
	cancel()
	if err != nil {
		return nil, err
	}
	history = history.Append(classification.NewItems...)

	responder, err := o.registry.Get(classification.Route)
	if err != nil {
		return nil, err
	}

	o.l.Infof(ctx, "%s: route=%s responder=%s", LogPrefixExecute, classification.Route, responder.Name())

	runCtx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	runResult, err := responder.Run(runCtx, history)
	cancel()
	if err != nil {
		return nil, err
	}
	history = history.Append(runResult.NewItems...)

	text := openai.ExtractText(runResult.OutputText)

	return &Result{
		Route:      classification.Route,
		OutputText: text,
		History:    history,
	}, nil
}
