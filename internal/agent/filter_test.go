package agent

import "testing"

func TestFilterAllowedDomains(t *testing.T) {
	allowed := []string{"globofiat.com.br"}

	t.Run("keeps allowed links", func(t *testing.T) {
		text := "• Pulse Drive — https://globofiat.com.br/pulse"
		if got := FilterAllowedDomains(text, allowed); got != text {
			t.Errorf("expected line kept, got %q", got)
		}
	})

	t.Run("keeps subdomains", func(t *testing.T) {
		text := "• Toro — https://ofertas.globofiat.com.br/toro"
		if got := FilterAllowedDomains(text, allowed); got != text {
			t.Errorf("expected subdomain kept, got %q", got)
		}
	})

	t.Run("drops foreign links", func(t *testing.T) {
		text := "• Pulse — https://globofiat.com.br/pulse\n" +
			"• Pulse — https://marketplace.com.br/pulse\n" +
			"Posso ajudar com mais alguma coisa?"
		want := "• Pulse — https://globofiat.com.br/pulse\n" +
			"Posso ajudar com mais alguma coisa?"
		if got := FilterAllowedDomains(text, allowed); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("drops lookalike domains", func(t *testing.T) {
		text := "• Pulse — https://globofiat.com.br.evil.com/pulse"
		if got := FilterAllowedDomains(text, allowed); got != "" {
			t.Errorf("expected lookalike dropped, got %q", got)
		}
	})

	t.Run("lines without links pass", func(t *testing.T) {
		text := "Temos ótimas condições este mês!"
		if got := FilterAllowedDomains(text, allowed); got != text {
			t.Errorf("expected plain text kept, got %q", got)
		}
	})

	t.Run("trailing punctuation tolerated", func(t *testing.T) {
		text := "Veja em https://globofiat.com.br/ofertas."
		if got := FilterAllowedDomains(text, allowed); got != text {
			t.Errorf("expected line kept, got %q", got)
		}
	})

	t.Run("no allowed domains disables filtering", func(t *testing.T) {
		text := "• Pulse — https://qualquersite.com/pulse"
		if got := FilterAllowedDomains(text, nil); got != text {
			t.Errorf("expected text untouched, got %q", got)
		}
	})
}
