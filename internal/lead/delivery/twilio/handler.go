package twilio

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/lead"
	"dealership-concierge/internal/model"
	pkgTwilio "dealership-concierge/pkg/twilio"
)

const (
	// MaxSeedInteractions bounds how much CRM history is re-injected as
	// conversation seed turns.
	MaxSeedInteractions = 10

	// ApologyMessage is the fixed reply when the pipeline fails. Wording is a
	// presentation concern and lives here, not in the core.
	ApologyMessage = "Desculpe, ocorreu um erro ao processar sua mensagem. Por favor, tente novamente."

	// EmptyBodyMessage answers inbound updates without text (media-only).
	EmptyBodyMessage = "Por enquanto consigo responder apenas mensagens de texto. Como posso ajudar?"
)

// HandleWebhook is the Gin handler for inbound Twilio WhatsApp messages.
// Unlike a fire-and-ack webhook, the TwiML body IS the reply, so the pipeline
// runs synchronously before responding; only CRM persistence is deferred to a
// background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	scope := model.Scope{
		Phone:       c.PostForm("From"),
		ProfileName: c.PostForm("ProfileName"),
	}
	body := c.PostForm("Body")

	if scope.Phone == "" {
		c.String(http.StatusBadRequest, "missing From")
		return
	}
	if body == "" {
		h.replyTwiML(c, EmptyBodyMessage)
		return
	}

	h.l.Infof(ctx, "twilio handler: inbound from=%s chars=%d", scope.Phone, len(body))

	seed := h.loadSeed(ctx, scope.Phone)

	result, err := h.orch.Execute(ctx, body, seed)
	if err != nil {
		h.l.Errorf(ctx, "twilio handler: pipeline failed for %s: %v", scope.Phone, err)
		h.replyTwiML(c, ApologyMessage)
		return
	}

	h.replyTwiML(c, result.OutputText)

	if h.uc == nil {
		return
	}

	// Persist after the reply is committed. Detached from the request context,
	// which is cancelled once the response is written.
	go func() {
		bgCtx := context.Background()
		_, err := h.uc.ProcessExchange(bgCtx, lead.ExchangeInput{
			Phone:        scope.Phone,
			ProfileName:  scope.ProfileName,
			InboundText:  body,
			OutboundText: result.OutputText,
			Route:        result.Route.String(),
		})
		if err != nil {
			h.l.Errorf(bgCtx, "twilio handler: CRM processing failed for %s: %v", scope.Phone, err)
		}
	}()
}

// loadSeed re-injects the lead's recent interactions as prior turns.
// Best-effort: a CRM read failure degrades to a fresh conversation.
func (h *handler) loadSeed(ctx context.Context, phone string) agent.History {
	if h.uc == nil {
		return nil
	}
	interactions, err := h.uc.RecentHistory(ctx, phone, MaxSeedInteractions)
	if err != nil {
		h.l.Warnf(ctx, "twilio handler: failed to load history for %s: %v", phone, err)
		return nil
	}

	var seed agent.History
	for _, it := range interactions {
		switch it.Direction {
		case lead.DirectionInbound:
			if it.ClientMessage != "" {
				seed = seed.Append(agent.UserTurn(it.ClientMessage))
			}
		case lead.DirectionOutbound:
			if it.BotMessage != "" {
				seed = seed.Append(agent.AssistantTurn(it.BotMessage))
			}
		}
	}
	return seed
}

func (h *handler) replyTwiML(c *gin.Context, message string) {
	twiml, err := pkgTwilio.NewMessagingResponse(message).Render()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "twilio handler: failed to render TwiML: %v", err)
		c.String(http.StatusInternalServerError, "")
		return
	}
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, twiml)
}
