package ultimateguitar

import (
	"regexp"
	"strings"
)

// repeat shorthand like "x2" or "x4" trailing the chord sequence
var repeatMarkerRe = regexp.MustCompile(`\s*(x\d+)`)

// extractRepeat returns the first repeat marker found after the last chord
// closing delimiter of a line, or nil. A line carries at most one marker.
func extractRepeat(line string) *string {
	tail := line
	if idx := strings.LastIndex(line, "[/ch]"); idx >= 0 {
		tail = line[idx+len("[/ch]"):]
	}
	m := repeatMarkerRe.FindStringSubmatch(tail)
	if m == nil {
		return nil
	}
	marker := m[1]
	return &marker
}
