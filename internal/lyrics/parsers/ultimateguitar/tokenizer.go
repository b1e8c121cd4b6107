package ultimateguitar

import (
	"regexp"
	"strings"
)

// The markup dialect uses three inline tag pairs: [ch]...[/ch] around a chord
// symbol, [tab]...[/tab] around a monospace block, and bracketed section
// labels like [Verse 2]. Everything else is text.

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenSection
	tokenChordOpen
	tokenChordClose
	tokenTabOpen
	tokenTabClose
)

type token struct {
	kind  tokenKind
	start int    // byte offset of the token within the blob
	end   int    // byte offset just past the token
	label string // verbatim section label, e.g. "Verse 2"
	base  string // label without the numeral, e.g. "Verse"
}

var sectionNames = []string{
	"Verse", "Chorus", "Bridge", "Intro", "Outro",
	"Solo", "Pre-Chorus", "Interlude", "Instrumental",
}

// trailing numeral after a label name, with optional spacing
var labelSuffixRe = regexp.MustCompile(`^[ \t]*\d*$`)

// tokenize scans the blob once and emits the token stream. Brackets that
// open no known tag are ordinary text.
func tokenize(blob string) []token {
	var tokens []token
	textStart := 0
	i := 0
	for i < len(blob) {
		if blob[i] != '[' {
			i++
			continue
		}
		tok, ok := matchTag(blob, i)
		if !ok {
			i++
			continue
		}
		if textStart < i {
			tokens = append(tokens, token{kind: tokenText, start: textStart, end: i})
		}
		tokens = append(tokens, tok)
		i = tok.end
		textStart = i
	}
	if textStart < len(blob) {
		tokens = append(tokens, token{kind: tokenText, start: textStart, end: len(blob)})
	}
	return tokens
}

func matchTag(blob string, i int) (token, bool) {
	rest := blob[i:]
	switch {
	case strings.HasPrefix(rest, "[ch]"):
		return token{kind: tokenChordOpen, start: i, end: i + len("[ch]")}, true
	case strings.HasPrefix(rest, "[/ch]"):
		return token{kind: tokenChordClose, start: i, end: i + len("[/ch]")}, true
	case strings.HasPrefix(rest, "[tab]"):
		return token{kind: tokenTabOpen, start: i, end: i + len("[tab]")}, true
	case strings.HasPrefix(rest, "[/tab]"):
		return token{kind: tokenTabClose, start: i, end: i + len("[/tab]")}, true
	}

	close := strings.IndexByte(rest, ']')
	if close < 0 {
		return token{}, false
	}
	label, base, ok := matchSectionLabel(rest[1:close])
	if !ok {
		return token{}, false
	}
	return token{kind: tokenSection, start: i, end: i + close + 1, label: label, base: base}, true
}

// matchSectionLabel reports whether the bracket interior is a section label
// from the fixed vocabulary, optionally followed by a numeral. Numbered
// variants stay verbatim: "Verse 2" is not folded into "Verse".
func matchSectionLabel(interior string) (label, base string, ok bool) {
	for _, name := range sectionNames {
		if !strings.HasPrefix(interior, name) {
			continue
		}
		suffix := interior[len(name):]
		if !labelSuffixRe.MatchString(suffix) {
			continue
		}
		return strings.TrimSpace(interior), name, true
	}
	return "", "", false
}
