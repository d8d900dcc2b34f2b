// Package finance implements the fixed amortization math behind financing
// quotes: standard annuity installments over a financed amount, with an
// optional promotional-rate window.
package finance

import (
	"errors"
	"math"
	"time"
)

// DefaultTerms are the term options presented together in a quote.
var DefaultTerms = []int{36, 48, 60}

var (
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidFraction  = errors.New("down payment fraction must be in [0, 1)")
	ErrInvalidRate      = errors.New("monthly rate must be positive")
	ErrInvalidTerm      = errors.New("term months must be positive")
)

// Installment is one term option of a quote.
type Installment struct {
	TermMonths     int     `json:"term_months"`
	Principal      float64 `json:"principal"`
	DownPayment    float64 `json:"down_payment"`
	MonthlyRate    float64 `json:"monthly_rate"`
	FinancedAmount float64 `json:"financed_amount"`
	Payment        float64 `json:"payment"`
}

// Quote is a multi-term financing simulation.
type Quote struct {
	Principal           float64       `json:"principal"`
	DownPaymentFraction float64       `json:"down_payment_fraction"`
	MonthlyRate         float64       `json:"monthly_rate"`
	Promotional         bool          `json:"promotional_rate_applied"`
	Options             []Installment `json:"options"`
}

// FinancedAmount is the amount left to finance after the down payment.
func FinancedAmount(principal, downPaymentFraction float64) float64 {
	return principal * (1 - downPaymentFraction)
}

// Payment computes the standard annuity installment:
// financed × i / (1 − (1+i)^(−n)).
func Payment(financed, monthlyRate float64, termMonths int) float64 {
	return financed * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-termMonths)))
}

// ApplicableRate selects the promotional rate while the promotion window is
// open (now ≤ promoUntil), the standard rate otherwise. A zero promoUntil or
// zero promoRate means no promotion.
func ApplicableRate(standardRate, promoRate float64, promoUntil, now time.Time) (rate float64, promotional bool) {
	if promoRate > 0 && !promoUntil.IsZero() && !now.After(promoUntil) {
		return promoRate, true
	}
	return standardRate, false
}

// NewQuote computes installment options for each term. Terms defaults to
// 36/48/60 months when empty.
func NewQuote(principal, downPaymentFraction, monthlyRate float64, terms []int) (*Quote, error) {
	if principal <= 0 {
		return nil, ErrInvalidPrincipal
	}
	if downPaymentFraction < 0 || downPaymentFraction >= 1 {
		return nil, ErrInvalidFraction
	}
	if monthlyRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(terms) == 0 {
		terms = DefaultTerms
	}

	financed := FinancedAmount(principal, downPaymentFraction)
	down := principal - financed

	quote := &Quote{
		Principal:           principal,
		DownPaymentFraction: downPaymentFraction,
		MonthlyRate:         monthlyRate,
		Options:             make([]Installment, 0, len(terms)),
	}

	for _, n := range terms {
		if n <= 0 {
			return nil, ErrInvalidTerm
		}
		quote.Options = append(quote.Options, Installment{
			TermMonths:     n,
			Principal:      principal,
			DownPayment:    round2(down),
			MonthlyRate:    monthlyRate,
			FinancedAmount: round2(financed),
			Payment:        round2(Payment(financed, monthlyRate, n)),
		})
	}

	return quote, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
