// Package headers holds the response header rules injected into every
// resource served to the application window.
package headers

import (
	"net/http"
	"strings"
)

// Header names and values required for cross-origin isolation. Without both,
// the webview does not expose SharedArrayBuffer to the page.
const (
	CrossOriginOpenerPolicy   = "Cross-Origin-Opener-Policy"
	CrossOriginEmbedderPolicy = "Cross-Origin-Embedder-Policy"

	SameOrigin  = "same-origin"
	RequireCorp = "require-corp"
)

// Rule is a single header name and the value it is forced to
type Rule struct {
	Name  string
	Value string
}

// Policy is a set of header rules applied together
type Policy []Rule

// CrossOriginIsolation returns the COOP/COEP pair
func CrossOriginIsolation() Policy {
	return Policy{
		{Name: CrossOriginOpenerPolicy, Value: SameOrigin},
		{Name: CrossOriginEmbedderPolicy, Value: RequireCorp},
	}
}

// Apply sets every rule on h, replacing any existing values for the same
// name regardless of key casing. Other headers are left untouched.
func (p Policy) Apply(h http.Header) {
	if h == nil {
		return
	}
	for _, rule := range p {
		canonical := http.CanonicalHeaderKey(rule.Name)
		for key := range h {
			if key != canonical && strings.EqualFold(key, canonical) {
				delete(h, key)
			}
		}
		h[canonical] = []string{rule.Value}
	}
}

// Intercept has the shape of a shell response hook
func (p Policy) Intercept(_ *http.Request, h http.Header) {
	p.Apply(h)
}
