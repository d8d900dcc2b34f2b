package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dealership-concierge/internal/agent"
	"dealership-concierge/internal/router"
	"dealership-concierge/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// keywordClassifier routes on simple keyword matching, standing in for the
// classifier model.
type keywordClassifier struct {
	err error
}

func (c *keywordClassifier) Classify(ctx context.Context, history []openai.Item) (*router.Result, error) {
	if c.err != nil {
		return nil, c.err
	}

	last := history[len(history)-1]
	text := strings.ToLower(last.Content[0].Text)

	route := router.RouteSaudacao
	switch {
	case strings.Contains(text, "financ"):
		route = router.RouteFinanciamento
	case strings.Contains(text, "seminovo"), strings.Contains(text, "usado"):
		route = router.RouteSeminovos
	}

	return &router.Result{
		Route: route,
		NewItems: []openai.Item{
			{
				Type:    openai.ItemTypeMessage,
				Role:    openai.RoleAssistant,
				Content: []openai.ContentPart{{Type: openai.ContentTypeOutputText, Text: `{"rota":"` + route.String() + `"}`}},
			},
		},
	}, nil
}

type stubLLM struct {
	text  string
	err   error
	calls int
}

func (m *stubLLM) CreateResponse(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &openai.Response{
		Output: []openai.OutputItem{
			{
				Type:    openai.OutputTypeMessage,
				Role:    openai.RoleAssistant,
				Content: []openai.ContentPart{{Type: openai.ContentTypeOutputText, Text: m.text}},
			},
		},
	}, nil
}

func responderFor(route router.Route, llm openai.IClient) *agent.Responder {
	return agent.NewResponder(agent.Config{
		Name:         route.String(),
		Route:        route,
		Model:        agent.ModelMini,
		Instructions: "responda",
	}, llm, &mockLogger{})
}

func TestOrchestrator_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input rejected", func(t *testing.T) {
		o := New(&keywordClassifier{}, agent.NewRegistry(), &mockLogger{}, 0)
		if _, err := o.Execute(ctx, "   ", nil); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("financing question reaches the financing responder", func(t *testing.T) {
		financingLLM := &stubLLM{text: "posso simular as parcelas para você"}
		greetingLLM := &stubLLM{text: "olá!"}

		registry := agent.NewRegistry()
		registry.Register(responderFor(router.RouteFinanciamento, financingLLM))
		registry.Register(responderFor(router.RouteSaudacao, greetingLLM))

		o := New(&keywordClassifier{}, registry, &mockLogger{}, 0)

		result, err := o.Execute(ctx, "quero financiar um Argo", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Route != router.RouteFinanciamento {
			t.Errorf("expected %s, got %s", router.RouteFinanciamento, result.Route)
		}
		if financingLLM.calls != 1 || greetingLLM.calls != 0 {
			t.Errorf("wrong responder invoked: financing=%d greeting=%d", financingLLM.calls, greetingLLM.calls)
		}
		if result.OutputText != "posso simular as parcelas para você" {
			t.Errorf("unexpected output %q", result.OutputText)
		}
	})

	t.Run("history accumulates all stages", func(t *testing.T) {
		registry := agent.NewRegistry()
		registry.Register(responderFor(router.RouteSaudacao, &stubLLM{text: "olá!"}))

		o := New(&keywordClassifier{}, registry, &mockLogger{}, 0)

		seed := agent.History{agent.UserTurn("oi"), agent.AssistantTurn("olá, em que posso ajudar?")}
		result, err := o.Execute(ctx, "bom dia", seed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// seed (2) + user turn + classifier turn + responder turn
		if len(result.History) != 5 {
			t.Fatalf("expected 5 history items, got %d", len(result.History))
		}
		if result.History[2].Content[0].Text != "bom dia" {
			t.Errorf("expected the new user turn at position 2")
		}
		if len(seed) != 2 {
			t.Errorf("seed was mutated, now %d items", len(seed))
		}
	})

	t.Run("same input yields same route", func(t *testing.T) {
		registry := agent.NewRegistry()
		registry.Register(responderFor(router.RouteSeminovos, &stubLLM{text: "temos Argo 2022"}))

		o := New(&keywordClassifier{}, registry, &mockLogger{}, 0)

		for i := 0; i < 3; i++ {
			result, err := o.Execute(ctx, "procuro um seminovo", nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Route != router.RouteSeminovos {
				t.Errorf("run %d: expected %s, got %s", i, router.RouteSeminovos, result.Route)
			}
		}
	})

	t.Run("classifier failure propagates", func(t *testing.T) {
		cerr := &router.ClassificationError{Err: errors.New("rota fora do conjunto")}
		o := New(&keywordClassifier{err: cerr}, agent.NewRegistry(), &mockLogger{}, 0)

		_, err := o.Execute(ctx, "oi", nil)
		var got *router.ClassificationError
		if !errors.As(err, &got) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
	})

	t.Run("unbound route propagates", func(t *testing.T) {
		// Registry without the financing responder the classifier picks.
		registry := agent.NewRegistry()
		registry.Register(responderFor(router.RouteSaudacao, &stubLLM{text: "olá!"}))

		o := New(&keywordClassifier{}, registry, &mockLogger{}, 0)

		_, err := o.Execute(ctx, "quero financiamento", nil)
		var uerr *agent.UnknownRouteError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected UnknownRouteError, got %v", err)
		}
	})

	t.Run("responder failure propagates", func(t *testing.T) {
		registry := agent.NewRegistry()
		registry.Register(responderFor(router.RouteSaudacao, &stubLLM{err: errors.New("timeout")}))

		o := New(&keywordClassifier{}, registry, &mockLogger{}, 0)

		_, err := o.Execute(ctx, "oi", nil)
		var rerr *agent.ResponderError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected ResponderError, got %v", err)
		}
	})
}
