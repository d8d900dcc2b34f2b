package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier model configuration, mirroring the consultor agent.
const (
	ClassifierName      = "Consultor"
	ClassifierModel     = "gpt-4.1-mini"
	ClassifierMaxTokens = 2048
)

// ClassifierTemperature and ClassifierTopP are sampling parameters for the
// classification call.
var (
	ClassifierTemperature = 1.0
	ClassifierTopP        = 1.0
)

// PromptClassifier instructs the model to emit only the schema-conforming
// route object, with no surrounding prose.
const PromptClassifier = `RETORNE APENAS o objeto JSON no formato do schema rota_identificador. Sem texto, sem markdown, sem explicações. Se não tiver certeza, escolha a melhor rota e retorne só o JSON.`

// SchemaName is the structured-output schema identifier.
const SchemaName = "rota_identificador"

// Error messages
const (
	ErrMsgLLMCallFailed  = "LLM call failed"
	ErrMsgEmptyOutput    = "empty classifier output"
	ErrMsgParseFailed    = "classifier output is not valid JSON"
	ErrMsgUnknownRoute   = "classifier output is outside the route enumeration"
	ErrMsgMissingHistory = "conversation history is empty"
)
