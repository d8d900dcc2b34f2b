package usecase

import (
	"context"

	"dealership-concierge/internal/lead"
	"dealership-concierge/internal/lead/repository"
	pkgLog "dealership-concierge/pkg/log"
)

// Messenger delivers operator notifications (e.g. the salesperson's WhatsApp).
type Messenger interface {
	SendMessage(ctx context.Context, from, to, body string) error
}

// Config holds the usecase's notification settings.
type Config struct {
	// NotifyFrom is the WhatsApp sender address for notifications.
	NotifyFrom string

	// NotifyTo is the salesperson's WhatsApp address. Empty disables
	// notifications.
	NotifyTo string

	// HotScoreThreshold is the score at which a lead triggers a notification.
	// Zero means DefaultHotScoreThreshold.
	HotScoreThreshold int
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.LeadRepository
	messenger Messenger
	cfg       Config
}

var _ lead.UseCase = (*implUseCase)(nil)

// New creates a new lead UseCase instance.
func New(l pkgLog.Logger, repo repository.LeadRepository, messenger Messenger, cfg Config) *implUseCase {
	if cfg.HotScoreThreshold <= 0 {
		cfg.HotScoreThreshold = DefaultHotScoreThreshold
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		messenger: messenger,
		cfg:       cfg,
	}
}
