// Package searchurl turns a dork into a clickable search URL for the engine it
// is tagged with.
package searchurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

// Templates maps an engine to a URL template with one %s for the escaped query.
type Templates map[dork.Engine]string

// Defaults returns the built-in templates. Multi-engine dorks open in Google.
func Defaults() Templates {
	return Templates{
		dork.Google: "https://www.google.com/search?q=%s",
		dork.Bing:   "https://www.bing.com/search?q=%s",
		dork.Yandex: "https://yandex.com/search/?text=%s",
	}
}

// Merge returns a copy of t with non-empty overrides applied.
func (t Templates) Merge(overrides Templates) Templates {
	out := make(Templates, len(t))
	for e, tmpl := range t {
		out[e] = tmpl
	}
	for e, tmpl := range overrides {
		if strings.TrimSpace(tmpl) != "" {
			out[e] = tmpl
		}
	}
	return out
}

// Template returns the template used for e, falling back to Google.
func (t Templates) Template(e dork.Engine) string {
	if tmpl, ok := t[e]; ok && tmpl != "" {
		return tmpl
	}
	if tmpl, ok := t[dork.Google]; ok && tmpl != "" {
		return tmpl
	}
	return Defaults()[dork.Google]
}

// URL builds the search URL for query on engine e.
func (t Templates) URL(e dork.Engine, query string) string {
	return fmt.Sprintf(t.Template(e), url.QueryEscape(query))
}

// For builds the search URL for d.
func (t Templates) For(d dork.Dork) string {
	return t.URL(d.Engine, d.Query)
}

// Validate checks that a template is an http(s) URL with exactly one %s.
func Validate(tmpl string) error {
	if strings.Count(tmpl, "%s") != 1 || strings.Count(tmpl, "%") != 1 {
		return fmt.Errorf("template %q must contain exactly one %%s and no other verbs", tmpl)
	}
	u, err := url.Parse(strings.Replace(tmpl, "%s", "q", 1))
	if err != nil {
		return fmt.Errorf("template %q: invalid url: %w", tmpl, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("template %q: scheme must be http or https, got %q", tmpl, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("template %q: missing host", tmpl)
	}
	return nil
}
