package router

import "dealership-concierge/pkg/openai"

// Route identifies which responder handles the conversation.
type Route string

const (
	RouteCarrosNovos   Route = "rota_carros_novos"
	RouteSeminovos     Route = "rota_seminovos"
	RouteFinanciamento Route = "rota_financiamento"
	RouteLeads         Route = "rota_leads"
	RouteSaudacao      Route = "rota_saudacao"
	RouteGarantia      Route = "rota_garantia"
	RouteAgendamento   Route = "rota_agendamento"
	RouteRevisao       Route = "rota_revisao"
	RoutePromocao      Route = "rota_promocao"
	RouteFeirao        Route = "rota_feirao"
	RoutePecas         Route = "rota_pecas"
	RouteTestDrive     Route = "rota_test_driver"
)

// AllRoutes is the closed route set. The classifier schema and the responder
// registry are both derived from it, so they cannot drift apart.
var AllRoutes = []Route{
	RouteCarrosNovos,
	RouteSeminovos,
	RouteFinanciamento,
	RouteLeads,
	RouteSaudacao,
	RouteGarantia,
	RouteAgendamento,
	RouteRevisao,
	RoutePromocao,
	RouteFeirao,
	RoutePecas,
	RouteTestDrive,
}

// String returns the route's string representation.
func (r Route) String() string {
	return string(r)
}

// IsValid reports whether r belongs to the closed route set.
func (r Route) IsValid() bool {
	for _, known := range AllRoutes {
		if r == known {
			return true
		}
	}
	return false
}

// Result is the outcome of one classification.
type Result struct {
	// Route is the single route the classifier committed to.
	Route Route

	// NewItems are the turns the classifier produced, to be appended to the
	// shared conversation history by the caller.
	NewItems []openai.Item

	// Raw is the unmodified model response.
	Raw *openai.Response
}

// routeOutput is the structured-output payload the classifier model emits.
type routeOutput struct {
	Rota string `json:"rota"`
}
