package sheets

// Sheet tabs and ranges. Column layout is fixed; schema management is the
// spreadsheet owner's concern.
const (
	LeadsRange        = "LEADS!A2:R"
	LeadsAppendRange  = "LEADS!A:R"
	InteractionsRange = "INTERACOES!A2:H"
	InteractionsAppendRange = "INTERACOES!A:H"
)

// LEADS column indexes (zero-based within the data range).
const (
	colLeadID = iota
	colLeadCreatedAt
	colLeadName
	colLeadPhone
	colLeadEmail
	colLeadInterestType
	colLeadInterestModel
	colLeadInterestTrim
	colLeadPriceMax
	colLeadPurchaseHorizon
	colLeadPaymentForm
	colLeadHasTradeIn
	colLeadScore
	colLeadClassification
	colLeadStatus
	colLeadOrigin
	colLeadLastInteraction
	colLeadUpdatedAt

	leadColumns
)

// INTERACOES column indexes.
const (
	colItID = iota
	colItLeadID
	colItPhone
	colItAt
	colItDirection
	colItAgent
	colItClientMessage
	colItBotMessage

	interactionColumns
)
