package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"dealership-concierge/internal/lead"
)

// fiatModels are the model names probed for in conversation text.
var fiatModels = []string{
	"mobi", "argo", "cronos", "pulse", "fastback",
	"strada", "toro", "titano", "fiorino", "ducato",
}

var pricePattern = regexp.MustCompile(`(\d+)\s*(mil|k)\b`)

// ExtractFields heuristically pulls lead attributes out of one exchange. Both
// sides of the conversation are probed: the reply often confirms what the
// client only implied.
func ExtractFields(inbound, outbound string) lead.ExtractedFields {
	combined := strings.ToLower(inbound + " " + outbound)
	var f lead.ExtractedFields

	for _, model := range fiatModels {
		if strings.Contains(combined, model) {
			f.InterestModel = strings.ToUpper(model[:1]) + model[1:]
			break
		}
	}

	// "seminovo" contains "novo", so it must be probed first.
	switch {
	case strings.Contains(combined, "seminovo"), strings.Contains(combined, "usado"):
		f.InterestType = "seminovos"
	case strings.Contains(combined, "0km"), strings.Contains(combined, "zero"),
		strings.Contains(combined, "novo"):
		f.InterestType = "carros_novos"
	case strings.Contains(combined, "financ"):
		f.InterestType = "financiamento"
	}

	switch {
	case strings.Contains(combined, "urgente"), strings.Contains(combined, "imediato"),
		strings.Contains(combined, "agora"):
		f.PurchaseHorizon = "imediato"
	case strings.Contains(combined, "30 dias"), strings.Contains(combined, "mês"):
		f.PurchaseHorizon = "30_dias"
	case strings.Contains(combined, "90 dias"), strings.Contains(combined, "3 meses"):
		f.PurchaseHorizon = "90_dias"
	}

	switch {
	case strings.Contains(combined, "vista"):
		f.PaymentForm = "à vista"
	case strings.Contains(combined, "financ"), strings.Contains(combined, "parcela"):
		f.PaymentForm = "financiado"
	case strings.Contains(combined, "consórcio"), strings.Contains(combined, "consorcio"):
		f.PaymentForm = "consórcio"
	}

	if m := pricePattern.FindStringSubmatch(combined); m != nil {
		if value, err := strconv.Atoi(m[1]); err == nil {
			f.PriceMax = float64(value) * 1000
		}
	}

	if strings.Contains(combined, "troca") || strings.Contains(combined, "trocar") {
		f.HasTradeIn = true
	}

	return f
}

// merge applies the non-zero extracted fields onto the lead.
func merge(l *lead.Lead, f lead.ExtractedFields) {
	if f.InterestModel != "" {
		l.InterestModel = f.InterestModel
	}
	if f.InterestType != "" {
		l.InterestType = f.InterestType
	}
	if f.PurchaseHorizon != "" {
		l.PurchaseHorizon = f.PurchaseHorizon
	}
	if f.PaymentForm != "" {
		l.PaymentForm = f.PaymentForm
	}
	if f.PriceMax > 0 {
		l.PriceMax = f.PriceMax
	}
	if f.HasTradeIn {
		l.HasTradeIn = true
	}
}
