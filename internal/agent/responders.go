package agent

import (
	"fmt"

	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/log"
	"dealership-concierge/pkg/openai"
)

// RegistryConfig carries the deployment-specific values the responder set
// needs: storefront domains, the indexed pricing corpus, the dealer's WhatsApp
// number, and the financing function tools.
type RegistryConfig struct {
	NewCarsDomain  string
	UsedCarsDomain string
	VectorStoreID  string
	DealerWhatsApp string
	FinancingTools []Tool
}

// DefaultRegistry builds the full responder set and validates it against the
// route enumeration. Adding a route without a responder fails here, at
// startup, not at request time.
func DefaultRegistry(llm openai.IClient, l log.Logger, cfg RegistryConfig) (*Registry, error) {
	one := 1.0
	mini := func(name string, route router.Route, instructions string) Config {
		return Config{
			Name:            name,
			Route:           route,
			Model:           ModelMini,
			Instructions:    instructions,
			Temperature:     &one,
			TopP:            &one,
			MaxOutputTokens: DefaultMaxTokens,
		}
	}
	reasoning := func(name string, route router.Route, instructions string) Config {
		return Config{
			Name:            name,
			Route:           route,
			Model:           ModelReasoning,
			Instructions:    instructions,
			ReasoningEffort: "low",
		}
	}

	carrosNovos := mini(NameCarrosNovos, router.RouteCarrosNovos,
		fmt.Sprintf(PromptCarrosNovos, cfg.NewCarsDomain, cfg.DealerWhatsApp))
	carrosNovos.WebSearch = &WebSearchConfig{
		AllowedDomains: []string{cfg.NewCarsDomain},
		ContextSize:    "medium",
	}

	seminovos := mini(NameSeminovos, router.RouteSeminovos,
		fmt.Sprintf(PromptSeminovos, cfg.UsedCarsDomain, cfg.DealerWhatsApp))
	seminovos.WebSearch = &WebSearchConfig{
		AllowedDomains: []string{cfg.UsedCarsDomain},
		ContextSize:    "medium",
	}

	financiamento := mini(NameFinanciamento, router.RouteFinanciamento,
		fmt.Sprintf(PromptFinanciamento, cfg.DealerWhatsApp))
	if cfg.VectorStoreID != "" {
		financiamento.FileSearch = &FileSearchConfig{
			VectorStoreIDs: []string{cfg.VectorStoreID},
		}
	}

	registry := NewRegistry()
	registry.Register(NewResponder(mini(NameSaudacao, router.RouteSaudacao,
		fmt.Sprintf(PromptSaudacao, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(carrosNovos, llm, l))
	registry.Register(NewResponder(seminovos, llm, l))
	registry.Register(NewResponder(financiamento, llm, l, cfg.FinancingTools...))
	registry.Register(NewResponder(mini(NameLeads, router.RouteLeads, PromptLeads), llm, l))
	registry.Register(NewResponder(mini(NameAgendamento, router.RouteAgendamento,
		fmt.Sprintf(PromptAgendamento, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(mini(NamePromocao, router.RoutePromocao,
		fmt.Sprintf(PromptPromocao, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(mini(NameFeirao, router.RouteFeirao,
		fmt.Sprintf(PromptFeirao, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(mini(NamePecas, router.RoutePecas,
		fmt.Sprintf(PromptPecas, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(reasoning(NameGarantia, router.RouteGarantia,
		fmt.Sprintf(PromptGarantia, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(reasoning(NameRevisao, router.RouteRevisao,
		fmt.Sprintf(PromptRevisao, cfg.DealerWhatsApp)), llm, l))
	registry.Register(NewResponder(reasoning(NameTestDrive, router.RouteTestDrive,
		fmt.Sprintf(PromptTestDrive, cfg.DealerWhatsApp)), llm, l))

	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}
