package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"dealership-concierge/internal/lead"
)

// GetByPhone returns the lead for a phone, scanning the sheet on cache miss.
func (r *sheetsRepo) GetByPhone(ctx context.Context, phone string) (*lead.Lead, error) {
	if phone == "" {
		return nil, lead.ErrEmptyPhone
	}

	if cached, ok := r.cache.Get(phone); ok {
		return cached.lead, nil
	}

	l, row, err := r.scanForPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	r.cache.Add(phone, cachedLead{lead: l, row: row})
	return l, nil
}

// Create appends a new lead row and returns its assigned ID.
func (r *sheetsRepo) Create(ctx context.Context, l *lead.Lead) (int, error) {
	if l.Phone == "" {
		return 0, lead.ErrEmptyPhone
	}

	rows, err := r.client.ReadRange(ctx, LeadsRange)
	if err != nil {
		return 0, fmt.Errorf("sheets repo: create: %w", err)
	}

	l.ID = len(rows) + 1
	now := time.Now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	l.LastInteraction = now

	if err := r.client.AppendRow(ctx, LeadsAppendRange, leadToRow(l)); err != nil {
		return 0, fmt.Errorf("sheets repo: create: %w", err)
	}

	// Appended below the existing rows; +2 skips the header.
	r.cache.Add(l.Phone, cachedLead{lead: l, row: len(rows) + 2})
	return l.ID, nil
}

// Update overwrites the lead's row in place.
func (r *sheetsRepo) Update(ctx context.Context, l *lead.Lead) error {
	if l.Phone == "" {
		return lead.ErrEmptyPhone
	}

	row := 0
	if cached, ok := r.cache.Get(l.Phone); ok {
		row = cached.row
	} else {
		_, found, err := r.scanForPhone(ctx, l.Phone)
		if err != nil {
			return err
		}
		row = found
	}

	l.UpdatedAt = time.Now().UTC()
	l.LastInteraction = l.UpdatedAt

	updateRange := fmt.Sprintf("LEADS!A%d:R%d", row, row)
	if err := r.client.UpdateRow(ctx, updateRange, leadToRow(l)); err != nil {
		return fmt.Errorf("sheets repo: update: %w", err)
	}

	r.cache.Add(l.Phone, cachedLead{lead: l, row: row})
	return nil
}

// scanForPhone walks the LEADS tab for the phone, returning the parsed lead
// and its 1-based sheet row.
func (r *sheetsRepo) scanForPhone(ctx context.Context, phone string) (*lead.Lead, int, error) {
	rows, err := r.client.ReadRange(ctx, LeadsRange)
	if err != nil {
		return nil, 0, fmt.Errorf("sheets repo: scan: %w", err)
	}

	for i, row := range rows {
		if cellString(row, colLeadPhone) == phone {
			return rowToLead(row), i + 2, nil
		}
	}
	return nil, 0, lead.ErrNotFound
}

func leadToRow(l *lead.Lead) []interface{} {
	row := make([]interface{}, leadColumns)
	row[colLeadID] = l.ID
	row[colLeadCreatedAt] = l.CreatedAt.Format(time.RFC3339)
	row[colLeadName] = l.Name
	row[colLeadPhone] = l.Phone
	row[colLeadEmail] = l.Email
	row[colLeadInterestType] = l.InterestType
	row[colLeadInterestModel] = l.InterestModel
	row[colLeadInterestTrim] = l.InterestTrim
	row[colLeadPriceMax] = formatPrice(l.PriceMax)
	row[colLeadPurchaseHorizon] = l.PurchaseHorizon
	row[colLeadPaymentForm] = l.PaymentForm
	row[colLeadHasTradeIn] = formatBool(l.HasTradeIn)
	row[colLeadScore] = l.Score
	row[colLeadClassification] = string(l.Classification)
	row[colLeadStatus] = l.Status
	row[colLeadOrigin] = l.Origin
	row[colLeadLastInteraction] = l.LastInteraction.Format(time.RFC3339)
	row[colLeadUpdatedAt] = l.UpdatedAt.Format(time.RFC3339)
	return row
}

func rowToLead(row []interface{}) *lead.Lead {
	return &lead.Lead{
		ID:              cellInt(row, colLeadID),
		CreatedAt:       cellTime(row, colLeadCreatedAt),
		Name:            cellString(row, colLeadName),
		Phone:           cellString(row, colLeadPhone),
		Email:           cellString(row, colLeadEmail),
		InterestType:    cellString(row, colLeadInterestType),
		InterestModel:   cellString(row, colLeadInterestModel),
		InterestTrim:    cellString(row, colLeadInterestTrim),
		PriceMax:        cellFloat(row, colLeadPriceMax),
		PurchaseHorizon: cellString(row, colLeadPurchaseHorizon),
		PaymentForm:     cellString(row, colLeadPaymentForm),
		HasTradeIn:      cellString(row, colLeadHasTradeIn) == "sim",
		Score:           cellInt(row, colLeadScore),
		Classification:  lead.Classification(cellString(row, colLeadClassification)),
		Status:          cellString(row, colLeadStatus),
		Origin:          cellString(row, colLeadOrigin),
		LastInteraction: cellTime(row, colLeadLastInteraction),
		UpdatedAt:       cellTime(row, colLeadUpdatedAt),
	}
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return s
}

func cellInt(row []interface{}, idx int) int {
	switch v := rowCell(row, idx).(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func cellFloat(row []interface{}, idx int) float64 {
	switch v := rowCell(row, idx).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func cellTime(row []interface{}, idx int) time.Time {
	t, _ := time.Parse(time.RFC3339, cellString(row, idx))
	return t
}

func rowCell(row []interface{}, idx int) interface{} {
	if idx >= len(row) {
		return nil
	}
	return row[idx]
}

func formatPrice(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "sim"
	}
	return "nao"
}
