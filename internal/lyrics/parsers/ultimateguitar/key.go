package ultimateguitar

import "regexp"

// UnknownKey is the sentinel the content source uses for songs without a
// published tonality.
const UnknownKey = "Unknown"

// everything from the first modifier suffix or slash bass separator onward
var keyModifierRe = regexp.MustCompile(`(m7|maj7|7|m|sus\d|add\d|dim|aug|/).*`)

// InferKey resolves the sheet's key. A tonality supplied by the page wins
// unchanged; otherwise the first chord of the first line is taken as the
// tonic with its modifiers stripped ("Am7" yields "A"). This is a textual
// prefix extraction, not harmonic analysis.
func InferKey(tonality string, lines []ChordLyricLine) string {
	if tonality != "" && tonality != UnknownKey {
		return tonality
	}
	for _, line := range lines {
		if len(line.Chords) > 0 {
			return keyModifierRe.ReplaceAllString(line.Chords[0], "")
		}
	}
	return UnknownKey
}
