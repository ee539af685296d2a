package cli

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "Repuestos SA", 24, "Repuestos SA"},
		{"exactly max", "abcd", 4, "abcd"},
		{"ascii cut", "Distribuidora Central", 10, "Distribui…"},
		{"accented name cut on rune boundary", "Panadería Doña María SAC", 12, "Panadería D…"},
		{"multibyte at the cut point", "Peñas", 3, "Pe…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
		})
	}
}
