// Package search parses the invoice search box's mini-language: free text
// optionally mixed with key:value filter tokens, e.g.
//
//	"repuestos emisor:20123456789 estado:pendiente"
package search

import "regexp"

// filterPatterns maps each recognized filter key to its extraction pattern.
// Keys are matched case-insensitively; values run to the next whitespace.
var filterPatterns = map[string]*regexp.Regexp{
	"numero": regexp.MustCompile(`(?i)numero:([^\s]+)`),
	"emisor": regexp.MustCompile(`(?i)emisor:([^\s]+)`),
	"fecha":  regexp.MustCompile(`(?i)fecha:([^\s]+)`),
	"monto":  regexp.MustCompile(`(?i)monto:([^\s]+)`),
	"estado": regexp.MustCompile(`(?i)estado:([^\s]+)`),
}

// Query is a parsed search input.
type Query struct {
	Raw     string
	Filters map[string]string
}

// HasFilters reports whether any key:value token was recognized.
func (q Query) HasFilters() bool {
	return len(q.Filters) > 0
}

// Parse extracts the recognized filter tokens out of raw. Unrecognized
// tokens and plain text stay in Raw untouched; only the first occurrence of
// each key is used.
func Parse(raw string) Query {
	q := Query{Raw: raw, Filters: map[string]string{}}
	for key, pattern := range filterPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			q.Filters[key] = m[1]
		}
	}
	return q
}
