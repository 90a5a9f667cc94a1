// Package dork generates search-engine queries ("dorks") for passive OSINT
// lookups from identity fragments: handles, names and email addresses.
//
// Every builder is a pure function. Blank or degenerate input yields a nil
// slice of categories rather than an error.
package dork

import (
	"fmt"
	"strings"
)

// Engine is the search backend a dork is written for. It only matters when a
// query is opened in a browser; it never changes the query text.
type Engine string

const (
	Google Engine = "Google"
	Bing   Engine = "Bing"
	Yandex Engine = "Yandex"
	Multi  Engine = "Multi-Engine"
)

// AllEngines returns all engines in display order.
func AllEngines() []Engine {
	return []Engine{Google, Bing, Yandex, Multi}
}

func (e Engine) String() string {
	return string(e)
}

// Valid reports whether e is one of the known engines.
func (e Engine) Valid() bool {
	for _, known := range AllEngines() {
		if e == known {
			return true
		}
	}
	return false
}

var engineAliases = map[string]Engine{
	"google":       Google,
	"bing":         Bing,
	"yandex":       Yandex,
	"multi":        Multi,
	"all":          Multi,
	"multi-engine": Multi,
}

// ParseEngine maps an engine value or CLI alias to an Engine.
func ParseEngine(s string) (Engine, error) {
	if e := Engine(s); e.Valid() {
		return e, nil
	}
	if e, ok := engineAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return e, nil
	}
	return "", fmt.Errorf("unknown engine %q (valid: google, bing, yandex, multi)", s)
}

// Dork is a single generated query.
type Dork struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Query       string `json:"query" yaml:"query"`
	Description string `json:"description" yaml:"description"`
	Engine      Engine `json:"engine" yaml:"engine"`
}

// Category groups dorks that share a reconnaissance objective. Dorks are in
// curated display order.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Dorks       []Dork `json:"dorks" yaml:"dorks"`
}

// Find returns the dork with the given id across categories.
func Find(categories []Category, id string) (Dork, bool) {
	for _, c := range categories {
		for _, d := range c.Dorks {
			if d.ID == id {
				return d, true
			}
		}
	}
	return Dork{}, false
}

// Filter keeps only the categories whose id is in ids. An empty ids keeps all.
func Filter(categories []Category, ids ...string) []Category {
	if len(ids) == 0 {
		return categories
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Category
	for _, c := range categories {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the total number of dorks across categories.
func Count(categories []Category) int {
	n := 0
	for _, c := range categories {
		n += len(c.Dorks)
	}
	return n
}
