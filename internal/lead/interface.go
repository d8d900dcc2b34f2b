package lead

import "context"

// UseCase is the CRM-side contract: persist the exchange, maintain the lead's
// extracted profile and score, and notify the salesperson when the lead runs
// hot. The conversational core never calls this directly; the delivery layer
// does, keeping the dependency one-way.
type UseCase interface {
	// ProcessExchange records one completed inbound/outbound exchange and
	// updates the lead's profile, score and classification.
	ProcessExchange(ctx context.Context, in ExchangeInput) (ExchangeOutput, error)

	// RecentHistory returns the lead's most recent interactions, oldest first,
	// for re-injection as conversation seed turns.
	RecentHistory(ctx context.Context, phone string, limit int) ([]Interaction, error)
}
