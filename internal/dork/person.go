package dork

import (
	"strings"
	"unicode/utf8"
)

// PersonOptions tunes Person output.
type PersonOptions struct {
	// Variations adds the "variations" category with the initial-based query.
	Variations bool `json:"variations" yaml:"variations"`
	// Transliterate is reserved. It is accepted and carried through config but
	// does not change any template.
	Transliterate bool `json:"transliterate" yaml:"transliterate"`
}

var personCatalog = []categoryTemplate{
	{
		ID:          "identity",
		Title:       "General Identity Discovery",
		Explanation: "Basic name-based queries to locate primary digital footprints.",
		Dorks: []dorkTemplate{
			{"p1", "Standard Full Name", `"{full}"`, "Exact match search for the full name.", Multi},
			{"p2", "Reversed Name", `"{reverse}"`, "Common in official documents or directory listings.", Multi},
			{"p3", "Middle Initial Variant", `"{first} * {last}"`, "Wildcard search to find matches with middle names or initials.", Google},
		},
	},
	{
		ID:          "social",
		Title:       "Social Media Presence",
		Explanation: "Targeting specific platforms for personal profiles.",
		Dorks: []dorkTemplate{
			{"s1", "Main Social Platforms", `"{full}" (site:facebook.com OR site:twitter.com OR site:instagram.com OR site:linkedin.com)`, "Checks major social media sites for the name.", Google},
			{"s2", "Professional Footprint", `"{full}" (site:linkedin.com OR site:xing.com OR site:crunchbase.com)`, "Focused on professional and career networking.", Google},
		},
	},
	{
		ID:          "handles",
		Title:       "Potential Usernames & Handles",
		Explanation: "Queries designed to find common username patterns based on the name.",
		Dorks: []dorkTemplate{
			{"h1", "Concatenated Name", `"{first}{last}" OR "{last}{first}"`, "Simple name combination handles.", Multi},
			{"h2", "Snake Case Name", `"{first}_{last}"`, "Underscore separated name patterns.", Multi},
			{"h3", "Professional Handle", `"{initial}{last}"`, "Initial plus last name pattern.", Multi},
		},
	},
	{
		ID:          "academic",
		Title:       "Academic & Technical Activity",
		Explanation: "Search for research papers, code repositories, and technical contributions.",
		Dorks: []dorkTemplate{
			{"a1", "Research & Science", `"{full}" (site:researchgate.net OR site:academia.edu OR site:scholar.google.com)`, "Searches for academic publications.", Google},
			{"a2", "Developer Activity", `"{full}" (site:github.com OR site:gitlab.com OR site:bitbucket.org)`, "Finds public code contributions.", Google},
		},
	},
	{
		ID:          "files",
		Title:       "Documents & File Exposure",
		Explanation: "Finding the person mentioned in publicly available files (CVs, reports, PDFs).",
		Dorks: []dorkTemplate{
			{"f1", "PDF Documents", `"{full}" filetype:pdf`, "Searches specifically for PDF files containing the name.", Google},
			{"f2", "Office Documents", `"{full}" (filetype:doc OR filetype:docx OR filetype:xls OR filetype:xlsx)`, "Searches for Word or Excel files.", Google},
			{"f3", "Contact Lists", `"{full}" "email" OR "phone" "contact"`, "Searches for public contact information lists.", Multi},
		},
	},
}

var personVariations = categoryTemplate{
	ID:          "variations",
	Title:       "Common Variations",
	Explanation: "Queries for nicknames or common formal/informal variations.",
	Dorks: []dorkTemplate{
		{"v1", "Initial-based Search", `"{initial} {last}"`, "Commonly used in directory listings.", Google},
	},
}

// Person builds dorks for a first and last name. Both are required.
func Person(first, last string, opts PersonOptions) []Category {
	f := strings.TrimSpace(first)
	l := strings.TrimSpace(last)
	if f == "" || l == "" {
		return nil
	}

	catalog := personCatalog
	if opts.Variations {
		catalog = append(catalog[:len(catalog):len(catalog)], personVariations)
	}

	return expand(catalog, vars{
		"first":   f,
		"last":    l,
		"full":    f + " " + l,
		"reverse": l + " " + f,
		"initial": initial(f),
	})
}

// initial returns the first character of s, not its first byte.
func initial(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
