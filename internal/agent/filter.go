package agent

import (
	"net/url"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s)\]>"']+`)

// FilterAllowedDomains removes lines whose links resolve outside the allowed
// domain set. Search results that leak through the hosted tool's own filter are
// excluded here rather than shown to the user. Lines without links pass
// untouched.
func FilterAllowedDomains(text string, allowed []string) string {
	if len(allowed) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if lineAllowed(line, allowed) {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func lineAllowed(line string, allowed []string) bool {
	for _, raw := range urlPattern.FindAllString(line, -1) {
		u, err := url.Parse(strings.TrimRight(raw, ".,;"))
		if err != nil {
			return false
		}
		if !hostAllowed(u.Hostname(), allowed) {
			return false
		}
	}
	return true
}

// hostAllowed matches the host against allowed domains including subdomains.
func hostAllowed(host string, allowed []string) bool {
	host = strings.ToLower(host)
	for _, domain := range allowed {
		domain = strings.ToLower(domain)
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
