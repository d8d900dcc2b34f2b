package usecase

import (
	"context"
	"errors"
	"testing"

	"dealership-concierge/internal/lead"
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

type mockRepo struct {
	leads        map[string]*lead.Lead
	interactions []lead.Interaction

	getErr    error
	createErr error
	updateErr error
	logErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{leads: make(map[string]*lead.Lead)}
}

func (m *mockRepo) GetByPhone(ctx context.Context, phone string) (*lead.Lead, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	l, ok := m.leads[phone]
	if !ok {
		return nil, lead.ErrNotFound
	}
	return l, nil
}

func (m *mockRepo) Create(ctx context.Context, l *lead.Lead) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	l.ID = len(m.leads) + 1
	m.leads[l.Phone] = l
	return l.ID, nil
}

func (m *mockRepo) Update(ctx context.Context, l *lead.Lead) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.leads[l.Phone] = l
	return nil
}

func (m *mockRepo) LogInteraction(ctx context.Context, it lead.Interaction) error {
	if m.logErr != nil {
		return m.logErr
	}
	m.interactions = append(m.interactions, it)
	return nil
}

func (m *mockRepo) RecentInteractions(ctx context.Context, phone string, limit int) ([]lead.Interaction, error) {
	var out []lead.Interaction
	for _, it := range m.interactions {
		if it.Phone == phone {
			out = append(out, it)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type mockMessenger struct {
	sent []string
	err  error
}

func (m *mockMessenger) SendMessage(ctx context.Context, from, to, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, body)
	return nil
}

const testPhone = "whatsapp:+5588999999999"

func TestProcessExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("creates lead on first contact", func(t *testing.T) {
		repo := newMockRepo()
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{NotifyTo: "whatsapp:+55vendor"})

		out, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:        testPhone,
			ProfileName:  "Maria",
			InboundText:  "bom dia",
			OutboundText: "Bom dia! Como posso ajudar?",
			Route:        "rota_saudacao",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		l := repo.leads[testPhone]
		if l == nil {
			t.Fatal("expected lead created")
		}
		if l.Name != "Maria" {
			t.Errorf("expected profile name, got %q", l.Name)
		}
		if l.Origin != LeadOrigin {
			t.Errorf("expected origin whatsapp, got %q", l.Origin)
		}
		if out.Classification != lead.ClassificationMuitoFrio {
			t.Errorf("expected muito_frio, got %s", out.Classification)
		}
	})

	t.Run("defaults the name when profile is absent", func(t *testing.T) {
		repo := newMockRepo()
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{})

		if _, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "oi",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := repo.leads[testPhone].Name; got != DefaultLeadName {
			t.Errorf("expected %q, got %q", DefaultLeadName, got)
		}
	})

	t.Run("logs both directions", func(t *testing.T) {
		repo := newMockRepo()
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{})

		if _, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:        testPhone,
			InboundText:  "tem Argo?",
			OutboundText: "Temos sim!",
			Route:        "rota_seminovos",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.interactions) != 2 {
			t.Fatalf("expected 2 interactions, got %d", len(repo.interactions))
		}
		in, out := repo.interactions[0], repo.interactions[1]
		if in.Direction != lead.DirectionInbound || in.Agent != AgentClient {
			t.Errorf("unexpected inbound record: %+v", in)
		}
		if out.Direction != lead.DirectionOutbound || out.Agent != "rota_seminovos" {
			t.Errorf("unexpected outbound record: %+v", out)
		}
		if in.ID == "" || in.ID == out.ID {
			t.Error("expected distinct non-empty interaction ids")
		}
	})

	t.Run("accumulates fields and rescores across exchanges", func(t *testing.T) {
		repo := newMockRepo()
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{NotifyTo: "whatsapp:+55vendor"})

		first, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "procuro um Argo até 80 mil",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// budget 30 + model 10
		if first.Score != 40 {
			t.Errorf("expected score 40, got %d", first.Score)
		}

		second, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "preciso urgente, pago à vista",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// + horizon 50 + cash 40
		if second.Score != 130 {
			t.Errorf("expected score 130, got %d", second.Score)
		}
		if second.Classification != lead.ClassificationQuente {
			t.Errorf("expected quente, got %s", second.Classification)
		}
	})

	t.Run("notifies only on the threshold crossing", func(t *testing.T) {
		repo := newMockRepo()
		messenger := &mockMessenger{}
		uc := New(&mockLogger{}, repo, messenger, Config{NotifyTo: "whatsapp:+55vendor"})

		cold, _ := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "bom dia",
		})
		if cold.Notified || len(messenger.sent) != 0 {
			t.Error("cold lead must not notify")
		}

		hot, _ := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "quero um Argo urgente até 80 mil, pago à vista",
		})
		if !hot.Notified || len(messenger.sent) != 1 {
			t.Fatalf("expected exactly one notification, got %d", len(messenger.sent))
		}

		again, _ := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "pode ser amanhã cedo",
		})
		if again.Notified || len(messenger.sent) != 1 {
			t.Errorf("already-hot lead must not notify again, got %d messages", len(messenger.sent))
		}
	})

	t.Run("notification failure does not fail the exchange", func(t *testing.T) {
		repo := newMockRepo()
		messenger := &mockMessenger{err: errors.New("twilio down")}
		uc := New(&mockLogger{}, repo, messenger, Config{NotifyTo: "whatsapp:+55vendor"})

		out, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "quero um Argo urgente até 80 mil, pago à vista",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Notified {
			t.Error("expected Notified false when the send fails")
		}
	})

	t.Run("interaction log failure is tolerated", func(t *testing.T) {
		repo := newMockRepo()
		repo.logErr = errors.New("quota exceeded")
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{})

		if _, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "oi",
		}); err != nil {
			t.Fatalf("expected best-effort logging, got %v", err)
		}
	})

	t.Run("update failure propagates", func(t *testing.T) {
		repo := newMockRepo()
		repo.updateErr = errors.New("write failed")
		uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{})

		if _, err := uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:       testPhone,
			InboundText: "oi",
		}); err == nil {
			t.Error("expected error when the lead update fails")
		}
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, newMockRepo(), &mockMessenger{}, Config{})
		if _, err := uc.ProcessExchange(ctx, lead.ExchangeInput{InboundText: "oi"}); !errors.Is(err, lead.ErrEmptyPhone) {
			t.Errorf("expected ErrEmptyPhone, got %v", err)
		}
	})
}

func TestRecentHistory(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	uc := New(&mockLogger{}, repo, &mockMessenger{}, Config{})

	for i := 0; i < 3; i++ {
		uc.ProcessExchange(ctx, lead.ExchangeInput{
			Phone:        testPhone,
			InboundText:  "mensagem",
			OutboundText: "resposta",
		})
	}

	t.Run("limited, oldest first", func(t *testing.T) {
		got, err := uc.RecentHistory(ctx, testPhone, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 interactions, got %d", len(got))
		}
		if got[len(got)-1].Direction != lead.DirectionOutbound {
			t.Error("expected the latest interaction to be the outbound reply")
		}
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		if _, err := uc.RecentHistory(ctx, "", 5); !errors.Is(err, lead.ErrEmptyPhone) {
			t.Errorf("expected ErrEmptyPhone, got %v", err)
		}
	})
}
