package repository

import (
	"context"

	"dealership-concierge/internal/lead"
)

// LeadRepository is the spreadsheet-backed CRM store.
type LeadRepository interface {
	// GetByPhone returns the lead for a phone, or lead.ErrNotFound.
	GetByPhone(ctx context.Context, phone string) (*lead.Lead, error)

	// Create persists a new lead and returns its assigned ID.
	Create(ctx context.Context, l *lead.Lead) (int, error)

	// Update overwrites the lead's row.
	Update(ctx context.Context, l *lead.Lead) error

	// LogInteraction appends one interaction record.
	LogInteraction(ctx context.Context, it lead.Interaction) error

	// RecentInteractions returns the lead's latest interactions, oldest first.
	RecentInteractions(ctx context.Context, phone string, limit int) ([]lead.Interaction, error)
}
