// Package operator inspects dork query strings: which search directives they
// use, their quoted phrases, and whether the quoting is well formed.
package operator

import (
	"fmt"
	"strings"
)

// Directive is a search operator of the form name:value.
type Directive string

const (
	Site      Directive = "site"
	Filetype  Directive = "filetype"
	Intext    Directive = "intext"
	AllInText Directive = "allintext"
	InURL     Directive = "inurl"
	Cache     Directive = "cache"
)

// AllDirectives returns every recognised directive in canonical order.
func AllDirectives() []Directive {
	return []Directive{Site, Filetype, Intext, AllInText, InURL, Cache}
}

func lookupDirective(name string) (Directive, bool) {
	name = strings.ToLower(name)
	for _, d := range AllDirectives() {
		if string(d) == name {
			return d, true
		}
	}
	return "", false
}

// Analysis describes the structure of one query.
type Analysis struct {
	// Directives lists each directive once, in order of first use.
	Directives []Directive
	// Exclusions holds negated directives such as "-site:instagram.com".
	Exclusions []string
	Phrases    []string
	OrCount    int
	// EmptyPhrases counts "" segments.
	EmptyPhrases int
	// Balanced is false when a quote is left open.
	Balanced bool
}

// Analyze parses query. It never fails; malformed quoting is reported via
// Balanced.
func Analyze(query string) Analysis {
	a := Analysis{Balanced: true}
	seen := make(map[Directive]bool)

	var (
		tok      strings.Builder
		phrase   strings.Builder
		inQuotes bool
	)

	flush := func() {
		t := tok.String()
		tok.Reset()
		if t == "" {
			return
		}
		if t == "OR" || t == "|" {
			a.OrCount++
			return
		}
		negated := strings.HasPrefix(t, "-")
		name, _, ok := strings.Cut(strings.TrimPrefix(t, "-"), ":")
		if !ok {
			return
		}
		d, known := lookupDirective(name)
		if !known {
			return
		}
		if negated {
			a.Exclusions = append(a.Exclusions, t)
			return
		}
		if !seen[d] {
			seen[d] = true
			a.Directives = append(a.Directives, d)
		}
	}

	for _, r := range query {
		switch {
		case r == '"':
			if inQuotes {
				if phrase.Len() == 0 {
					a.EmptyPhrases++
				} else {
					a.Phrases = append(a.Phrases, phrase.String())
				}
				phrase.Reset()
				inQuotes = false
			} else {
				// A pending intext: stays in tok and is flushed after the phrase.
				inQuotes = true
			}
		case inQuotes:
			phrase.WriteRune(r)
		case r == ' ' || r == '\t' || r == '(' || r == ')':
			flush()
		default:
			tok.WriteRune(r)
		}
	}
	flush()

	if inQuotes {
		a.Balanced = false
	}
	return a
}

// Problems returns human-readable issues with a query, or nil.
func Problems(query string) []string {
	var out []string
	if strings.TrimSpace(query) == "" {
		return []string{"query is empty"}
	}
	a := Analyze(query)
	if !a.Balanced {
		out = append(out, "unbalanced quotes")
	}
	if a.EmptyPhrases > 0 {
		out = append(out, fmt.Sprintf("%d empty quoted phrase(s)", a.EmptyPhrases))
	}
	if strings.Count(query, "(") != strings.Count(query, ")") {
		out = append(out, "unbalanced parentheses")
	}
	return out
}

// Summary renders a short one-line description, e.g. "site · intext · 2 phrases".
func (a Analysis) Summary() string {
	var parts []string
	for _, d := range a.Directives {
		parts = append(parts, string(d))
	}
	if len(a.Exclusions) > 0 {
		parts = append(parts, fmt.Sprintf("%d exclusion(s)", len(a.Exclusions)))
	}
	if a.OrCount > 0 {
		parts = append(parts, fmt.Sprintf("%d OR", a.OrCount))
	}
	switch len(a.Phrases) {
	case 0:
	case 1:
		parts = append(parts, "1 phrase")
	default:
		parts = append(parts, fmt.Sprintf("%d phrases", len(a.Phrases)))
	}
	if len(parts) == 0 {
		return "plain text"
	}
	return strings.Join(parts, " · ")
}
