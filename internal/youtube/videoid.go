package youtube

import "regexp"

var videoIDPattern = regexp.MustCompile(`(?:v=|youtu\.be/|embed/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID pulls the 11-character video identifier out of a YouTube
// URL. It recognizes watch (?v=), youtu.be and embed links, tolerating any
// trailing query parameters. The second return value is false when the URL
// matches none of the known shapes.
func ExtractVideoID(url string) (string, bool) {
	matches := videoIDPattern.FindStringSubmatch(url)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}
