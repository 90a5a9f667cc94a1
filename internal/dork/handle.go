package dork

import "strings"

// NormalizeHandle trims surrounding whitespace and one leading "@".
func NormalizeHandle(handle string) string {
	h := strings.TrimSpace(handle)
	h = strings.TrimPrefix(h, "@")
	return strings.TrimSpace(h)
}

var instagramCatalog = []categoryTemplate{
	{
		ID:          "platform",
		Title:       "Instagram Platform Dorks",
		Explanation: "Search specifically within the Instagram domain for profile remnants and direct mentions.",
		Dorks: []dorkTemplate{
			{"i1", "Direct Profile Search", `site:instagram.com intext:"{handle}"`, "Searches for the username specifically within Instagram text.", Google},
			{"i2", "Handle Mention", `intext:"@{handle}" site:instagram.com`, "Finds mentions of the handle in comments or captions.", Google},
			{"i3", "URL Pattern", `"instagram.com/{handle}"`, "Looks for direct profile URL links indexed.", Multi},
			{"i4", "Tagged Content", `intext:"Tagged" site:instagram.com "{handle}"`, "Finds photos or posts where the user was tagged.", Google},
			{"i5", "Google Cache", `cache:instagram.com/{handle}`, "Attempts to access a cached version of the profile.", Google},
			{"i6", "Profile Mirrors", `site:imginn.com OR site:picuki.com OR site:dumpor.com "{handle}"`, "Searches for the profile on common Instagram viewer/mirror sites.", Multi},
			{"i7", "Cross-Engine Cache Discovery", `(site:google.com OR site:yandex.com OR site:bing.com) "instagram.com/{handle}" intext:"cache" OR intext:"snapshot"`, "Searches for indexed cache snapshots and remnants across major search engine indexes.", Multi},
			{"i8", "Yandex Cache Search", `cache:https://www.instagram.com/{handle}`, "Directly attempts to query Yandex's cache for the profile snapshot.", Yandex},
			{"i9", "Bing Historical Remnants", `site:bing.com "instagram.com/{handle}" "cached"`, `Searches Bing for results that explicitly contain the "cached" marker for the profile.`, Bing},
		},
	},
	{
		ID:          "external",
		Title:       "External Mentions & Cross-Platform",
		Explanation: "Discover where this username appears outside of Instagram (Twitter, Facebook, Reddit, etc).",
		Dorks: []dorkTemplate{
			{"e1", "Global Mention", `"@{handle}" -site:instagram.com`, "Mentions of the handle excluding Instagram itself.", Google},
			{"e2", "Major Socials", `"@{handle}" (site:twitter.com OR site:facebook.com OR site:youtube.com OR site:reddit.com OR site:medium.com)`, "Finds the handle on other major social platforms.", Multi},
			{"e3", "Blogs & News", `"@{handle}" (site:news OR site:blog OR site:wordpress.com OR site:tumblr.com)`, "Mentions in news articles or personal blogs.", Google},
			{"e4", "Forum Search", `"@{handle}" (site:quora.com OR site:reddit.com OR site:stackoverflow.com)`, "Finds the handle mentioned in community discussions.", Multi},
		},
	},
	{
		ID:          "tagged",
		Title:       "Tagged Content & Shares",
		Explanation: "Dorks focused on finding shared content, reposts, and third-party mentions.",
		Dorks: []dorkTemplate{
			{"t1", "Shared Posts", `intext:"instagram.com/{handle}" "shared"`, "Finds instances where someone shared this profile link.", Google},
			{"t2", "Posted by user", `intext:"instagram.com/{handle}" "posted"`, "Finds references to posts made by this profile.", Google},
			{"t3", "Image URL Exposure", `inurl:instagram.com "{handle}" -site:instagram.com`, "Finds Instagram images indexed on other sites.", Bing},
		},
	},
	{
		ID:          "broad",
		Title:       "Broad Discovery & Deep Search",
		Explanation: "Wide-net queries to catch archived content and obscure mentions.",
		Dorks: []dorkTemplate{
			{"b1", "All Text Search", `allintext:"@{handle}" OR allintext:"instagram.com/{handle}"`, "Aggressive text search for handle and URL.", Google},
			{"b2", "Video Mentions", `("{handle}" OR "@{handle}") (site:youtube.com/watch OR site:vimeo.com OR site:dailymotion.com)`, "Finds the handle mentioned in video descriptions/comments.", Multi},
			{"b3", "Archive Search", `site:archive.org "{handle}"`, "Searches the Wayback Machine indexes for this handle.", Google},
		},
	},
}

var xCatalog = []categoryTemplate{
	{
		ID:          "x_platform",
		Title:       "X Platform Presence",
		Explanation: "Direct platform checks for indexed profile content.",
		Dorks: []dorkTemplate{
			{"x1", "Indexed Username", `site:twitter.com "{handle}"`, "General mention of username on X.", Google},
			{"x2", "Handle Search", `site:twitter.com "@{handle}"`, "Specific handle mention on X.", Google},
			{"x3", "Profile URL", `"twitter.com/{handle}"`, "Finds direct links to the profile.", Multi},
			{"x4", "Google Cache", `cache:twitter.com/{handle}`, "Access archived or cached profile state.", Google},
		},
	},
	{
		ID:          "x_content",
		Title:       "Tweets, Replies & Mentions",
		Explanation: "Find interaction history and specific conversational footprints.",
		Dorks: []dorkTemplate{
			{"xc1", "User Mentions", `site:twitter.com intext:"@{handle}"`, "Finds tweets mentioning this handle.", Google},
			{"xc2", "Retweet History", `site:twitter.com "RT @{handle}"`, "Finds accounts that have retweeted this user.", Multi},
			{"xc3", "Reply Threads", `site:twitter.com "replying to @{handle}"`, "Uncovers conversational threads involving the user.", Google},
		},
	},
	{
		ID:          "x_external",
		Title:       "External Mentions of X Account",
		Explanation: "Discover where the handle is discussed outside of X.",
		Dorks: []dorkTemplate{
			{"xe1", "External Handles", `"@{handle}" -site:twitter.com`, "Mentions of the handle on the wider web.", Google},
			{"xe2", "Cross Platform", `"@{handle}" (site:facebook.com OR site:reddit.com OR site:medium.com OR site:github.com)`, "Checks other social and tech platforms.", Multi},
		},
	},
}

// Instagram builds dorks for an Instagram handle, with or without a leading "@".
func Instagram(handle string) []Category {
	return handleDorks(instagramCatalog, handle)
}

// X builds dorks for an X (Twitter) handle, with or without a leading "@".
func X(handle string) []Category {
	return handleDorks(xCatalog, handle)
}

func handleDorks(catalog []categoryTemplate, handle string) []Category {
	h := NormalizeHandle(handle)
	if h == "" {
		return nil
	}
	return expand(catalog, vars{"handle": h})
}
