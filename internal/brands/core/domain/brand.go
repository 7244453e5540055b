package domain

import (
	"regexp"
	"strings"
	"time"
)

// Brand is one configured helpdesk account. URL holds only the account
// subdomain, e.g. "acme" for acme.reamaze.io.
type Brand struct {
	ID        int64
	Name      string
	URL       string
	Email     string
	APIToken  string
	CreatedAt time.Time
}

func (b Brand) HasOwnCredentials() bool {
	return b.Email != "" && b.APIToken != ""
}

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// NormalizeSubdomain reduces inputs such as "https://Acme.reamaze.io/admin"
// to "acme". Inputs without a dot are only trimmed and lowercased.
func NormalizeSubdomain(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return s
}

func ValidSubdomain(s string) bool {
	return len(s) <= 63 && subdomainPattern.MatchString(s)
}
