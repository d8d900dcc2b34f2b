package usecase

import (
	"testing"

	"dealership-concierge/internal/lead"
)

func TestScore(t *testing.T) {
	t.Run("empty lead scores zero", func(t *testing.T) {
		if got := Score(&lead.Lead{}); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("hot lead", func(t *testing.T) {
		l := &lead.Lead{
			PurchaseHorizon: "imediato",
			PriceMax:        80000,
			InterestModel:   "Argo",
			PaymentForm:     "à vista",
		}
		// 50 + 30 + 10 + 40
		if got := Score(l); got != 130 {
			t.Errorf("expected 130, got %d", got)
		}
	})

	t.Run("financed buyer with trade-in", func(t *testing.T) {
		l := &lead.Lead{
			PurchaseHorizon: "30_dias",
			PaymentForm:     "financiado",
			HasTradeIn:      true,
		}
		// 30 + 20 + 25
		if got := Score(l); got != 75 {
			t.Errorf("expected 75, got %d", got)
		}
	})

	t.Run("trim adds on top of model", func(t *testing.T) {
		l := &lead.Lead{InterestModel: "Pulse", InterestTrim: "Impetus"}
		if got := Score(l); got != ScoreModelKnown+ScoreTrimKnown {
			t.Errorf("expected %d, got %d", ScoreModelKnown+ScoreTrimKnown, got)
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		score int
		want  lead.Classification
	}{
		{0, lead.ClassificationMuitoFrio},
		{29, lead.ClassificationMuitoFrio},
		{30, lead.ClassificationFrio},
		{59, lead.ClassificationFrio},
		{60, lead.ClassificationMorno},
		{99, lead.ClassificationMorno},
		{100, lead.ClassificationQuente},
		{200, lead.ClassificationQuente},
	}
	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
