package ultimateguitar

// introStride spaces chords of bar-formatted intro lines. Intro lines carry
// no singable text to align against, so the positions only preserve relative
// order, not typographic placement.
const introStride = 10

// extractChords returns the chord symbols of a line together with the offsets
// of their opening delimiters within the line. A pair with an empty interior
// yields no token.
func extractChords(line string) (chords []string, positions []int) {
	tokens := tokenize(line)
	for i := 0; i < len(tokens); i++ {
		if tokens[i].kind != tokenChordOpen {
			continue
		}
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].kind == tokenChordClose {
				if symbol := line[tokens[i].end:tokens[j].start]; symbol != "" {
					chords = append(chords, symbol)
					positions = append(positions, tokens[i].start)
				}
				i = j
				break
			}
		}
	}
	return chords, positions
}

// processIntro emits one instrumental line per chord-bearing line of an Intro
// section, with synthetically spaced positions.
func processIntro(label string, lines []classifiedLine, out *[]ChordLyricLine) {
	for _, line := range lines {
		if line.kind != lineChord {
			continue
		}
		chords, _ := extractChords(line.text)
		if len(chords) == 0 {
			continue
		}
		positions := make([]int, len(chords))
		for i := range positions {
			positions[i] = i * introStride
		}
		*out = append(*out, ChordLyricLine{
			Section:        label,
			Chords:         chords,
			ChordPositions: positions,
			RepeatInfo:     extractRepeat(line.text),
		})
	}
}

// processStandard walks a section's classified lines, pairing each chord line
// with an immediately following lyric line when one exists. A chord line
// followed by anything else is instrumental and keeps its raw offsets.
func processStandard(label string, lines []classifiedLine, out *[]ChordLyricLine) {
	i := 0
	for i < len(lines) {
		line := lines[i]
		if line.kind != lineChord {
			i++
			continue
		}

		chords, positions := extractChords(line.text)
		repeat := extractRepeat(line.text)

		var lyrics *string
		if i+1 < len(lines) && lines[i+1].kind == lineLyric {
			text := lines[i+1].text
			lyrics = &text
			positions = reconcilePositions(positions, len(text))
			i += 2
		} else {
			i++
		}

		// a malformed tag that produced no tokens drops the whole line
		if len(chords) == 0 {
			continue
		}
		*out = append(*out, ChordLyricLine{
			Section:        label,
			Chords:         chords,
			ChordPositions: positions,
			Lyrics:         lyrics,
			RepeatInfo:     repeat,
		})
	}
}

// reconcilePositions maps raw chord offsets (measured in the tagged line,
// which the delimiters inflate) onto the plain lyric. Offsets past the lyric
// are rescaled by lyricLen/lastOffset, everything is clamped into the lyric,
// and colliding offsets are bumped right so chords never land on the same
// character. The result is an approximation of the original spacing, not a
// character-perfect reproduction.
func reconcilePositions(positions []int, lyricLen int) []int {
	if len(positions) == 0 || lyricLen == 0 {
		return positions
	}
	if last := positions[len(positions)-1]; last > lyricLen && last > 0 {
		scale := float64(lyricLen) / float64(last)
		for i := range positions {
			positions[i] = int(float64(positions[i]) * scale)
		}
	}
	for i := range positions {
		if positions[i] > lyricLen-1 {
			positions[i] = lyricLen - 1
		}
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			positions[i] = positions[i-1] + 1
			if positions[i] > lyricLen-1 {
				positions[i] = lyricLen - 1
			}
		}
	}
	return positions
}
