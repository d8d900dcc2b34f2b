package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dealership-concierge/internal/lead"
)

// ProcessExchange records one completed exchange: ensure the lead exists, log
// both directions, merge extracted fields, rescore, and notify the salesperson
// when the lead crosses the hot threshold.
func (uc *implUseCase) ProcessExchange(ctx context.Context, in lead.ExchangeInput) (lead.ExchangeOutput, error) {
	if in.Phone == "" {
		return lead.ExchangeOutput{}, lead.ErrEmptyPhone
	}

	l, err := uc.ensureLead(ctx, in)
	if err != nil {
		return lead.ExchangeOutput{}, err
	}

	uc.logInteraction(ctx, lead.Interaction{
		ID:            uuid.NewString(),
		LeadID:        l.ID,
		Phone:         in.Phone,
		Direction:     lead.DirectionInbound,
		Agent:         AgentClient,
		ClientMessage: in.InboundText,
	})
	uc.logInteraction(ctx, lead.Interaction{
		ID:         uuid.NewString(),
		LeadID:     l.ID,
		Phone:      in.Phone,
		Direction:  lead.DirectionOutbound,
		Agent:      in.Route,
		BotMessage: in.OutboundText,
	})

	previousScore := l.Score
	if fields := ExtractFields(in.InboundText, in.OutboundText); !fields.IsEmpty() {
		merge(l, fields)
	}
	l.Score = Score(l)
	l.Classification = Classify(l.Score)

	if err := uc.repo.Update(ctx, l); err != nil {
		return lead.ExchangeOutput{}, fmt.Errorf("%s: %w", LogPrefixProcessExchange, err)
	}

	out := lead.ExchangeOutput{
		LeadID:         l.ID,
		Score:          l.Score,
		Classification: l.Classification,
	}

	// Notify only on the crossing, not on every hot-lead message.
	if l.Score >= uc.cfg.HotScoreThreshold && previousScore < uc.cfg.HotScoreThreshold {
		out.Notified = uc.notify(ctx, l)
	}

	uc.l.Infof(ctx, "%s: lead=%d score=%d classification=%s", LogPrefixProcessExchange, l.ID, l.Score, l.Classification)
	return out, nil
}

// RecentHistory returns the lead's most recent interactions, oldest first.
func (uc *implUseCase) RecentHistory(ctx context.Context, phone string, limit int) ([]lead.Interaction, error) {
	if phone == "" {
		return nil, lead.ErrEmptyPhone
	}
	return uc.repo.RecentInteractions(ctx, phone, limit)
}

func (uc *implUseCase) ensureLead(ctx context.Context, in lead.ExchangeInput) (*lead.Lead, error) {
	l, err := uc.repo.GetByPhone(ctx, in.Phone)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, lead.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", LogPrefixProcessExchange, err)
	}

	name := in.ProfileName
	if name == "" {
		name = DefaultLeadName
	}
	l = &lead.Lead{
		Phone:          in.Phone,
		Name:           name,
		Status:         DefaultLeadStatus,
		Origin:         LeadOrigin,
		Classification: lead.ClassificationMuitoFrio,
	}
	if _, err := uc.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixProcessExchange, err)
	}
	uc.l.Infof(ctx, "%s: created lead %d for %s", LogPrefixProcessExchange, l.ID, in.Phone)
	return l, nil
}

// logInteraction is best-effort: a CRM write failure must never lose the reply.
func (uc *implUseCase) logInteraction(ctx context.Context, it lead.Interaction) {
	if err := uc.repo.LogInteraction(ctx, it); err != nil {
		uc.l.Warnf(ctx, "%s: failed to log interaction: %v", LogPrefixProcessExchange, err)
	}
}

func (uc *implUseCase) notify(ctx context.Context, l *lead.Lead) bool {
	if uc.messenger == nil || uc.cfg.NotifyTo == "" {
		uc.l.Debugf(ctx, "%s: hot-lead notification disabled", LogPrefixProcessExchange)
		return false
	}

	body := fmt.Sprintf(
		"🔥 LEAD QUENTE!\n\nNome: %s\nTelefone: %s\nInteresse: %s\nModelo: %s\nPrazo: %s\nPontuação: %d\n\nEntre em contato AGORA!",
		orDefault(l.Name, "Não informado"),
		l.Phone,
		orDefault(l.InterestType, "Não especificado"),
		orDefault(l.InterestModel, "Não especificado"),
		orDefault(l.PurchaseHorizon, "Não informado"),
		l.Score,
	)

	if err := uc.messenger.SendMessage(ctx, uc.cfg.NotifyFrom, uc.cfg.NotifyTo, body); err != nil {
		uc.l.Warnf(ctx, "%s: failed to notify salesperson: %v", LogPrefixProcessExchange, err)
		return false
	}
	uc.l.Infof(ctx, "%s: salesperson notified for lead %d", LogPrefixProcessExchange, l.ID)
	return true
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
