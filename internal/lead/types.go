package lead

import "time"

// Classification buckets a lead by its computed score.
type Classification string

const (
	ClassificationQuente    Classification = "quente"
	ClassificationMorno     Classification = "morno"
	ClassificationFrio      Classification = "frio"
	ClassificationMuitoFrio Classification = "muito_frio"
)

// Interaction directions.
const (
	DirectionInbound  = "entrada"
	DirectionOutbound = "saida"
)

// Lead is one CRM contact, keyed by phone.
type Lead struct {
	ID              int
	Phone           string
	Name            string
	Email           string
	InterestType    string // carros_novos | seminovos | financiamento | ...
	InterestModel   string
	InterestTrim    string
	PriceMax        float64
	PurchaseHorizon string // imediato | 30_dias | 90_dias
	PaymentForm     string // à vista | financiado | consórcio
	HasTradeIn      bool
	Score           int
	Classification  Classification
	Status          string
	Origin          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastInteraction time.Time
}

// Interaction is one logged message exchange entry.
type Interaction struct {
	ID            string
	LeadID        int
	Phone         string
	At            time.Time
	Direction     string // entrada | saida
	Agent         string // "cliente" for inbound, route name for outbound
	ClientMessage string
	BotMessage    string
}

// ExtractedFields are the lead attributes heuristically pulled out of an
// exchange. Zero values mean "not mentioned"; only non-zero fields are merged
// into the lead.
type ExtractedFields struct {
	InterestModel   string
	InterestType    string
	PurchaseHorizon string
	PaymentForm     string
	PriceMax        float64
	HasTradeIn      bool
}

// IsEmpty reports whether nothing was extracted.
func (f ExtractedFields) IsEmpty() bool {
	return f == ExtractedFields{}
}

// ExchangeInput is one completed request's record: inbound text, the reply
// sent back, and the route taken.
type ExchangeInput struct {
	Phone        string
	ProfileName  string
	InboundText  string
	OutboundText string
	Route        string
}

// ExchangeOutput reports the lead's state after processing one exchange.
type ExchangeOutput struct {
	LeadID         int
	Score          int
	Classification Classification
	Notified       bool
}
