package dork

import (
	"regexp"
	"strings"
)

// LinkedInOptions are the optional qualifiers for LinkedIn.
type LinkedInOptions struct {
	// Company is appended as a quoted phrase to the company-context templates.
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
	// Country is appended as a quoted phrase after the company on the same templates.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

func (o LinkedInOptions) qualifiers() string {
	return phrase(o.Company) + phrase(o.Country)
}

var linkedInCatalog = []categoryTemplate{
	{
		ID:          "li_profile",
		Title:       "Profile Discovery",
		Explanation: "Locate LinkedIn profiles through various URL patterns.",
		Dorks: []dorkTemplate{
			{"li1", "Standard Profile", `site:linkedin.com/in "{name}"{qualifiers}`, "Primary profile search.", Google},
			{"li2", "Public Directory", `site:linkedin.com/pub "{name}"`, "Search old or public directory formats.", Google},
			{"li3", "Cached Profile", `cache:linkedin.com/in/{slug}`, "Attempt to view cached version.", Google},
		},
	},
	{
		ID:          "li_employment",
		Title:       "Company & Employment Intelligence",
		Explanation: "Targeted searches for professional mentions and team association.",
		Dorks: []dorkTemplate{
			{"lie1", "Company Context", `"{name}" site:linkedin.com{qualifiers}`, "Find the person within a specific company context on LinkedIn.", Google},
			{"lie2", "External Professional", `"linkedin.com/in" "{name}" -site:linkedin.com`, "Mentions of their LinkedIn profile on third-party sites.", Multi},
		},
	},
	{
		ID:          "li_docs",
		Title:       "Documents & CVs",
		Explanation: "Finding professional documents and resumes containing the name.",
		Dorks: []dorkTemplate{
			{"lid1", "Resumes & CVs", `"{name}" filetype:pdf "CV" OR "resume"`, "Finds publicly indexed resumes.", Google},
			{"lid2", "Presentations", `"{name}" site:slideshare.net OR site:speakerdeck.com`, "Professional presentation mentions.", Multi},
		},
	},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug turns a display name into the hyphenated form used in profile URLs.
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-")
}

// LinkedIn builds dorks for a full name with optional company and country.
func LinkedIn(name string, opts LinkedInOptions) []Category {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil
	}
	return expand(linkedInCatalog, vars{
		"name":       n,
		"slug":       Slug(n),
		"qualifiers": opts.qualifiers(),
	})
}
