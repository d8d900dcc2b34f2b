package router

import (
	"context"
	"errors"
	"testing"

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

type mockLLM struct {
	response *openai.Response
	err      error

	lastRequest *openai.Request
}

func (m *mockLLM) CreateResponse(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func textResponse(text string) *openai.Response {
	return &openai.Response{
		Output: []openai.OutputItem{
			{
				Type:    openai.OutputTypeMessage,
				Role:    openai.RoleAssistant,
				Content: []openai.ContentPart{{Type: openai.ContentTypeOutputText, Text: text}},
			},
		},
	}
}

func userHistory(text string) []openai.Item {
	return []openai.Item{
		{
			Type:    openai.ItemTypeMessage,
			Role:    openai.RoleUser,
			Content: []openai.ContentPart{{Type: openai.ContentTypeInputText, Text: text}},
		},
	}
}

func TestRouteClassifier_Classify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid route", func(t *testing.T) {
		llm := &mockLLM{response: textResponse(`{"rota":"rota_financiamento"}`)}
		c := New(llm, &mockLogger{})

		result, err := c.Classify(ctx, userHistory("quero financiar um Argo"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Route != RouteFinanciamento {
			t.Errorf("expected %s, got %s", RouteFinanciamento, result.Route)
		}
		if len(result.NewItems) != 1 {
			t.Errorf("expected 1 new item, got %d", len(result.NewItems))
		}
	})

	t.Run("request is schema constrained", func(t *testing.T) {
		llm := &mockLLM{response: textResponse(`{"rota":"rota_saudacao"}`)}
		c := New(llm, &mockLogger{})

		if _, err := c.Classify(ctx, userHistory("oi")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := llm.lastRequest
		if req.Model != ClassifierModel {
			t.Errorf("expected model %s, got %s", ClassifierModel, req.Model)
		}
		if req.Text == nil || req.Text.Format == nil {
			t.Fatal("expected structured output format")
		}
		if req.Text.Format.Name != SchemaName {
			t.Errorf("expected schema %q, got %q", SchemaName, req.Text.Format.Name)
		}
		if !req.Text.Format.Strict {
			t.Error("expected strict schema")
		}
	})

	t.Run("empty history", func(t *testing.T) {
		c := New(&mockLLM{}, &mockLogger{})
		_, err := c.Classify(ctx, nil)

		var cerr *ClassificationError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
	})

	t.Run("LLM call failure", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("connection refused")}
		c := New(llm, &mockLogger{})

		_, err := c.Classify(ctx, userHistory("oi"))
		var cerr *ClassificationError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
	})

	t.Run("empty model output", func(t *testing.T) {
		llm := &mockLLM{response: &openai.Response{}}
		c := New(llm, &mockLogger{})

		_, err := c.Classify(ctx, userHistory("oi"))
		var cerr *ClassificationError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
	})

	t.Run("non-JSON output", func(t *testing.T) {
		llm := &mockLLM{response: textResponse("acho que o cliente quer um seminovo")}
		c := New(llm, &mockLogger{})

		_, err := c.Classify(ctx, userHistory("tem Argo usado?"))
		var cerr *ClassificationError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
		if cerr.Output == "" {
			t.Error("expected raw output preserved in error")
		}
	})

	t.Run("route outside enumeration", func(t *testing.T) {
		llm := &mockLLM{response: textResponse(`{"rota":"rota_inexistente"}`)}
		c := New(llm, &mockLogger{})

		_, err := c.Classify(ctx, userHistory("oi"))
		var cerr *ClassificationError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ClassificationError, got %v", err)
		}
	})
}

func TestRoute_IsValid(t *testing.T) {
	for _, route := range AllRoutes {
		if !route.IsValid() {
			t.Errorf("route %s should be valid", route)
		}
	}
	if Route("rota_outra").IsValid() {
		t.Error("unknown route should not be valid")
	}
}

func TestOutputSchema_EnumeratesAllRoutes(t *testing.T) {
	schema := outputSchema()
	props := schema["properties"].(map[string]interface{})
	rota := props["rota"].(map[string]interface{})
	enum := rota["enum"].([]string)

	if len(enum) != len(AllRoutes) {
		t.Fatalf("expected %d enum values, got %d", len(AllRoutes), len(enum))
	}
	for i, route := range AllRoutes {
		if enum[i] != route.String() {
			t.Errorf("enum[%d] = %q, want %q", i, enum[i], route)
		}
	}
}
