package ultimateguitar

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineNoise
	lineChord
	lineLyric
)

// classifiedLine is one raw line of a section span, trimmed, with its role.
type classifiedLine struct {
	kind lineKind
	text string
}

// classify splits a section span into classified lines. When the span
// contains [tab] blocks only the block interiors are used, in order of
// appearance; the blocks carry the reliable monospace spacing and everything
// outside them is decoration. Without blocks the raw span lines are used
// directly. Each block is classified independently: a blank boundary line
// separates blocks so a chord line ending one block never pairs with a lyric
// line opening the next.
func classify(span string) []classifiedLine {
	blocks := tabBlocks(span)
	if len(blocks) == 0 {
		blocks = []string{span}
	}

	var out []classifiedLine
	for i, block := range blocks {
		if i > 0 {
			out = append(out, classifiedLine{kind: lineBlank})
		}
		for _, raw := range strings.Split(block, "\n") {
			out = append(out, classifyLine(strings.TrimSpace(raw)))
		}
	}
	return out
}

// tabBlocks returns the interiors of all complete [tab]...[/tab] pairs.
// An unmatched opener is ignored.
func tabBlocks(span string) []string {
	var blocks []string
	tokens := tokenize(span)
	for i := 0; i < len(tokens); i++ {
		if tokens[i].kind != tokenTabOpen {
			continue
		}
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].kind == tokenTabClose {
				blocks = append(blocks, span[tokens[i].end:tokens[j].start])
				i = j
				break
			}
		}
	}
	return blocks
}

func classifyLine(text string) classifiedLine {
	switch {
	case text == "":
		return classifiedLine{kind: lineBlank}
	case containsSectionMarker(text):
		// a marker leaking into a span is uninformative, including the
		// section's own heading line
		return classifiedLine{kind: lineNoise, text: text}
	case strings.Contains(text, "[ch]"):
		return classifiedLine{kind: lineChord, text: text}
	default:
		return classifiedLine{kind: lineLyric, text: text}
	}
}

func containsSectionMarker(text string) bool {
	for _, tok := range tokenize(text) {
		if tok.kind == tokenSection {
			return true
		}
	}
	return false
}
