// Package tweet holds the post-URL utilities: recognizing tweet links in
// free text and pulling out the numeric status id the embed layer needs.
package tweet

import "regexp"

var (
	urlPattern = regexp.MustCompile(`https?://(?:x\.com|twitter\.com)/[a-zA-Z0-9_]+/status/\d+`)
	idPattern  = regexp.MustCompile(`status/(\d+)`)
)

// ExtractURLs returns the post URLs found in text, duplicates removed,
// first-occurrence order preserved.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	var urls []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		urls = append(urls, m)
	}
	return urls
}

// ExtractID returns the numeric status id embedded in url. The second
// return value is false when no id is present.
func ExtractID(url string) (string, bool) {
	m := idPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
