package dork

import "strings"

// dorkTemplate is one catalog row. Query holds {placeholder} tokens that are
// expanded in a single pass, so substituted input is never re-expanded.
type dorkTemplate struct {
	ID          string
	Title       string
	Query       string
	Description string
	Engine      Engine
}

type categoryTemplate struct {
	ID          string
	Title       string
	Explanation string
	Dorks       []dorkTemplate
}

// vars maps placeholder names (without braces) to their values.
type vars map[string]string

func (v vars) replacer() *strings.Replacer {
	pairs := make([]string, 0, len(v)*2)
	for name, value := range v {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...)
}

// expand renders catalog against v. Categories left without dorks are dropped.
func expand(catalog []categoryTemplate, v vars) []Category {
	r := v.replacer()
	out := make([]Category, 0, len(catalog))
	for _, ct := range catalog {
		if len(ct.Dorks) == 0 {
			continue
		}
		c := Category{
			ID:          ct.ID,
			Title:       ct.Title,
			Explanation: ct.Explanation,
			Dorks:       make([]Dork, 0, len(ct.Dorks)),
		}
		for _, dt := range ct.Dorks {
			c.Dorks = append(c.Dorks, Dork{
				ID:          dt.ID,
				Title:       dt.Title,
				Query:       r.Replace(dt.Query),
				Description: dt.Description,
				Engine:      dt.Engine,
			})
		}
		out = append(out, c)
	}
	return out
}

// phrase quotes s as a search phrase prefixed by a space, or returns "" when
// s is blank so optional qualifiers never leave an empty "" behind.
func phrase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return ` "` + s + `"`
}
