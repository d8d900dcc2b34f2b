package usecase

// Log prefixes
const (
	LogPrefixProcessExchange = "internal.lead.usecase.ProcessExchange"
)

// Scoring weights. Weighted sum over extracted fields; thresholds bucket the
// total. Tuning is out of scope, the weights are fixed.
const (
	ScoreHorizonImmediate = 50
	ScoreHorizonShort     = 30
	ScoreHorizonMedium    = 15
	ScoreBudgetDefined    = 30
	ScoreModelKnown       = 10
	ScoreTrimKnown        = 20
	ScorePaymentCash      = 40
	ScorePaymentFinanced  = 20
	ScorePaymentConsortium = 10
	ScoreTradeIn          = 25
)

// Classification thresholds.
const (
	ThresholdQuente = 100
	ThresholdMorno  = 60
	ThresholdFrio   = 30
)

// DefaultHotScoreThreshold triggers the salesperson notification.
const DefaultHotScoreThreshold = 100

// Lead defaults.
const (
	DefaultLeadName   = "Novo Contato"
	DefaultLeadStatus = "novo"
	LeadOrigin        = "whatsapp"
	AgentClient       = "cliente"
)
