package usecase

import (
	"strings"

	"dealership-concierge/internal/lead"
)

// Score computes the lead's priority as a weighted sum over its known fields.
func Score(l *lead.Lead) int {
	score := 0

	switch {
	case strings.Contains(l.PurchaseHorizon, "imediato"), strings.Contains(l.PurchaseHorizon, "urgente"):
		score += ScoreHorizonImmediate
	case strings.Contains(l.PurchaseHorizon, "30"):
		score += ScoreHorizonShort
	case strings.Contains(l.PurchaseHorizon, "90"):
		score += ScoreHorizonMedium
	}

	if l.PriceMax > 0 {
		score += ScoreBudgetDefined
	}
	if l.InterestModel != "" {
		score += ScoreModelKnown
	}
	if l.InterestTrim != "" {
		score += ScoreTrimKnown
	}

	payment := strings.ToLower(l.PaymentForm)
	switch {
	case strings.Contains(payment, "vista"):
		score += ScorePaymentCash
	case strings.Contains(payment, "financ"):
		score += ScorePaymentFinanced
	case strings.Contains(payment, "cons"):
		score += ScorePaymentConsortium
	}

	if l.HasTradeIn {
		score += ScoreTradeIn
	}

	return score
}

// Classify buckets a score.
func Classify(score int) lead.Classification {
	switch {
	case score >= ThresholdQuente:
		return lead.ClassificationQuente
	case score >= ThresholdMorno:
		return lead.ClassificationMorno
	case score >= ThresholdFrio:
		return lead.ClassificationFrio
	default:
		return lead.ClassificationMuitoFrio
	}
}
