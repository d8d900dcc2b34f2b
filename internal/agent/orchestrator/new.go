package orchestrator

import (
	"time"

	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/log"
)

// Orchestrator composes classifier, registry lookup and responder invocation
// into one request-scoped pipeline. It owns the conversation history for the
// duration of one Execute call; nothing is cached across requests.
type Orchestrator struct {
	classifier   router.Classifier
	registry     *agent.Registry
	l            log.Logger
	stageTimeout time.Duration
}

// New creates an Orchestrator. stageTimeout bounds each model-call stage;
// zero means DefaultStageTimeout.
func New(classifier router.Classifier, registry *agent.Registry, l log.Logger, stageTimeout time.Duration) *Orchestrator {
	if stageTimeout <= 0 {
		stageTimeout = DefaultStageTimeout
	}
	return &Orchestrator{
		classifier:   classifier,
		registry:     registry,
		l:            l,
		stageTimeout: stageTimeout,
	}
}
