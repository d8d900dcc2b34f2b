package twilio

import (
	"context"

	"github.com/gin-gonic/gin"

	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/agent/orchestrator"
	"dealership-concierge/internal/lead"
	pkgLog "dealership-concierge/pkg/log"
)

// Handler is the interface for the Twilio WhatsApp delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Executor runs the conversational pipeline for one inbound message.
type Executor interface {
	Execute(ctx context.Context, userText string, seed agent.History) (*orchestrator.Result, error)
}

type handler struct {
	l    pkgLog.Logger
	orch Executor
	uc   lead.UseCase
}

// New creates a new Twilio delivery handler.
func New(l pkgLog.Logger, orch Executor, uc lead.UseCase) Handler {
	return &handler{
		l:    l,
		orch: orch,
		uc:   uc,
	}
}
