package domain

import "testing"

func TestNormalizeSubdomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme", "acme"},
		{"  Acme ", "acme"},
		{"acme.reamaze.io", "acme"},
		{"https://acme.reamaze.io", "acme"},
		{"http://acme.reamaze.io/admin/reports?x=1", "acme"},
		{"julegenserbutikken", "julegenserbutikken"},
	}

	for _, tt := range tests {
		if got := NormalizeSubdomain(tt.in); got != tt.want {
			t.Errorf("NormalizeSubdomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidSubdomain(t *testing.T) {
	valid := []string{"acme", "acme-support", "a1"}
	invalid := []string{"", "-acme", "acme-", "ac me", "acme.io", "evil.com/x"}

	for _, s := range valid {
		if !ValidSubdomain(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if ValidSubdomain(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
