package curator

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration renders an ISO-8601 video duration as "H:MM:SS", or "M:SS"
// when there is no hour component. Anything that does not look like a
// duration renders as "0:00".
func FormatDuration(isoDuration string) string {
	match := durationPattern.FindStringSubmatch(isoDuration)
	if match == nil {
		return "0:00"
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
