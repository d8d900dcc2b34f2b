package sheets

import (
	"context"
	"fmt"
	"time"

	"dealership-concierge/internal/lead"
)

// LogInteraction appends one interaction record to the INTERACOES tab.
func (r *sheetsRepo) LogInteraction(ctx context.Context, it lead.Interaction) error {
	if it.Phone == "" {
		return lead.ErrEmptyPhone
	}
	if it.At.IsZero() {
		it.At = time.Now().UTC()
	}

	row := make([]interface{}, interactionColumns)
	row[colItID] = it.ID
	row[colItLeadID] = it.LeadID
	row[colItPhone] = it.Phone
	row[colItAt] = it.At.Format(time.RFC3339)
	row[colItDirection] = it.Direction
	row[colItAgent] = it.Agent
	row[colItClientMessage] = it.ClientMessage
	row[colItBotMessage] = it.BotMessage

	if err := r.client.AppendRow(ctx, InteractionsAppendRange, row); err != nil {
		return fmt.Errorf("sheets repo: log interaction: %w", err)
	}
	return nil
}

// RecentInteractions returns the lead's latest interactions, oldest first.
func (r *sheetsRepo) RecentInteractions(ctx context.Context, phone string, limit int) ([]lead.Interaction, error) {
	if phone == "" {
		return nil, lead.ErrEmptyPhone
	}

	rows, err := r.client.ReadRange(ctx, InteractionsRange)
	if err != nil {
		return nil, fmt.Errorf("sheets repo: recent interactions: %w", err)
	}

	var matched []lead.Interaction
	for _, row := range rows {
		if cellString(row, colItPhone) != phone {
			continue
		}
		matched = append(matched, lead.Interaction{
			ID:            cellString(row, colItID),
			LeadID:        cellInt(row, colItLeadID),
			Phone:         phone,
			At:            cellTime(row, colItAt),
			Direction:     cellString(row, colItDirection),
			Agent:         cellString(row, colItAgent),
			ClientMessage: cellString(row, colItClientMessage),
			BotMessage:    cellString(row, colItBotMessage),
		})
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}
