package dork

import "strings"

var emailCatalog = []categoryTemplate{
	{
		ID:          "em_direct",
		Title:       "Direct Email Exposure",
		Explanation: "Search for literal mentions of the email address across the web.",
		Dorks: []dorkTemplate{
			{"em1", "Literal Match", `"{email}"`, "Exact match search for the full email.", Multi},
			{"em2", "External Domain", `"{email}" -site:{domain}`, "Finds email usage outside of its own organization.", Google},
			{"em3", "Paste Sites", `"{email}" (site:pastebin.com OR site:ghostbin.co OR site:controlc.com)`, "Checks for email in common snippet storage sites.", Google},
		},
	},
	{
		ID:          "em_leaks",
		Title:       "Data Breach Indicators",
		Explanation: "Passive search for email presence in public breach mentions.",
		Dorks: []dorkTemplate{
			{"eml1", "Public Leaks", `"{email}" "leak" OR "dump" OR "breach"`, "Passive indicator search for leaks.", Google},
			{"eml2", "Log Exposure", `"{email}" filetype:log`, "Searches for server log files containing the email.", Google},
		},
	},
	{
		ID:          "em_social",
		Title:       "Pivoting & Associations",
		Explanation: "Connect the email to usernames or profiles.",
		Dorks: []dorkTemplate{
			{"ems1", "Username Pivot", `"{local}" "{label}"`, "Attempts to find associations between the email username and company.", Multi},
			{"ems2", "Developer Forums", `"{email}" (site:stackoverflow.com OR site:github.com OR site:reddit.com)`, "Finds account associations on technical sites.", Multi},
		},
	},
}

// SplitEmail splits an address on its first "@". Anything after that is the
// domain, further "@" included. ok is false when there is no "@" or either
// side is empty.
func SplitEmail(email string) (local, domain string, ok bool) {
	local, domain, found := strings.Cut(strings.TrimSpace(email), "@")
	if !found || local == "" || domain == "" {
		return "", "", false
	}
	return local, domain, true
}

// DomainLabel returns the domain up to its first dot ("corp" for
// "corp.example.com"). This is a heuristic, not a public-suffix parse.
func DomainLabel(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return domain
	}
	return label
}

// Email builds dorks for an email address.
func Email(email string) []Category {
	clean := strings.TrimSpace(email)
	local, domain, ok := SplitEmail(clean)
	if !ok {
		return nil
	}
	return expand(emailCatalog, vars{
		"email":  clean,
		"local":  local,
		"domain": domain,
		"label":  DomainLabel(domain),
	})
}
