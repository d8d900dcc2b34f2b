package orchestrator

import (
	"errors"
	"time"
)

// Log prefixes
const (
	LogPrefixExecute = "internal.agent.orchestrator.Execute"
)

// DefaultStageTimeout bounds each model-call stage of the pipeline.
const DefaultStageTimeout = 45 * time.Second

// ErrEmptyInput rejects inbound messages with no text; the classifier's user
// turn must never have empty content.
var ErrEmptyInput = errors.New("inbound text is empty")
