package finance

import (
	"context"
	"fmt"
	"time"
)

// QuoteTool exposes the amortization math to the financing responder as a
// function tool, so installments are computed here and never estimated by the
// model.
type QuoteTool struct {
	now func() time.Time
}

// NewQuoteTool creates the financing_quote tool.
func NewQuoteTool() *QuoteTool {
	return &QuoteTool{now: time.Now}
}

func (t *QuoteTool) Name() string { return "financing_quote" }

func (t *QuoteTool) Description() string {
	return "Calcula parcelas de financiamento pela fórmula de amortização (tabela Price) para múltiplos prazos. Use a taxa promocional apenas quando a promoção ainda estiver vigente."
}

func (t *QuoteTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"principal": map[string]interface{}{
				"type":        "number",
				"description": "Preço base do veículo em reais",
			},
			"down_payment_fraction": map[string]interface{}{
				"type":        "number",
				"description": "Fração de entrada, ex.: 0.2 para 20%",
			},
			"monthly_rate": map[string]interface{}{
				"type":        "number",
				"description": "Taxa ao mês, ex.: 0.0155 para 1,55%",
			},
			"promo_rate": map[string]interface{}{
				"type":        "number",
				"description": "Taxa promocional ao mês, se houver",
			},
			"promo_until": map[string]interface{}{
				"type":        "string",
				"description": "Último dia da promoção, formato YYYY-MM-DD",
			},
			"term_months": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "integer"},
				"description": "Prazos em meses; padrão 36, 48 e 60",
			},
		},
		"required": []string{"principal", "down_payment_fraction", "monthly_rate"},
	}
}

// Execute computes the quote. Rate selection honors the promotion window
// against the current date.
func (t *QuoteTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	principal, err := floatArg(args, "principal")
	if err != nil {
		return nil, err
	}
	fraction, err := floatArg(args, "down_payment_fraction")
	if err != nil {
		return nil, err
	}
	standardRate, err := floatArg(args, "monthly_rate")
	if err != nil {
		return nil, err
	}

	promoRate, _ := optionalFloatArg(args, "promo_rate")
	var promoUntil time.Time
	if raw, ok := args["promo_until"].(string); ok && raw != "" {
		promoUntil, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid promo_until %q: %w", raw, err)
		}
	}

	rate, promotional := ApplicableRate(standardRate, promoRate, promoUntil, t.now())

	terms := intSliceArg(args, "term_months")

	quote, err := NewQuote(principal, fraction, rate, terms)
	if err != nil {
		return nil, err
	}
	quote.Promotional = promotional
	return quote, nil
}

func floatArg(args map[string]interface{}, key string) (float64, error) {
	v, ok := optionalFloatArg(args, key)
	if !ok {
		return 0, fmt.Errorf("missing or non-numeric argument %q", key)
	}
	return v, nil
}

func optionalFloatArg(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func intSliceArg(args map[string]interface{}, key string) []int {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	var out []int
	for _, item := range raw {
		if f, ok := item.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}
