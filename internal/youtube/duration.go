package youtube

import (
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISO8601Duration converts an ISO-8601 duration like "PT1H5M10S" into
// total whole seconds. Missing components count as zero; input that matches
// no component at all yields 0 rather than an error.
func ParseISO8601Duration(duration string) int {
	matches := durationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	hours := atoiOrZero(matches[1])
	minutes := atoiOrZero(matches[2])
	seconds := atoiOrZero(matches[3])

	return hours*3600 + minutes*60 + seconds
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
