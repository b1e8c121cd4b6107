package ultimateguitar

// section is a contiguous region of the blob owned by one label occurrence.
// The span starts at the label marker itself and runs to the next marker (or
// the end of the blob), so concatenating all spans reconstructs the blob from
// the first marker onward. Text before the first marker is never assigned a
// span. A repeated label yields distinct sections in document order.
type section struct {
	label string
	base  string
	start int
	end   int
}

func (s section) span(blob string) string {
	return blob[s.start:s.end]
}

// segment folds the token stream into the ordered section list. A blob with
// no label tokens yields one implicit unlabeled section covering everything.
func segment(blob string, tokens []token) []section {
	var sections []section
	for _, tok := range tokens {
		if tok.kind != tokenSection {
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].end = tok.start
		}
		sections = append(sections, section{
			label: tok.label,
			base:  tok.base,
			start: tok.start,
			end:   len(blob),
		})
	}
	if len(sections) == 0 {
		return []section{{start: 0, end: len(blob)}}
	}
	return sections
}
