package ultimateguitar

import "testing"

func TestTokenizeTags(t *testing.T) {
	tokens := tokenize("[ch]Am[/ch]")

	want := []struct {
		kind       tokenKind
		start, end int
	}{
		{tokenChordOpen, 0, 4},
		{tokenText, 4, 6},
		{tokenChordClose, 6, 11},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].kind != w.kind || tokens[i].start != w.start || tokens[i].end != w.end {
			t.Errorf("token %d = {kind:%v start:%d end:%d}, want {kind:%v start:%d end:%d}",
				i, tokens[i].kind, tokens[i].start, tokens[i].end, w.kind, w.start, w.end)
		}
	}
}

func TestTokenizeSectionLabels(t *testing.T) {
	cases := []struct {
		in    string
		label string
		base  string
	}{
		{"[Verse]", "Verse", "Verse"},
		{"[Verse 2]", "Verse 2", "Verse"},
		{"[Pre-Chorus]", "Pre-Chorus", "Pre-Chorus"},
		{"[Intro]", "Intro", "Intro"},
		{"[Instrumental]", "Instrumental", "Instrumental"},
	}
	for _, c := range cases {
		tokens := tokenize(c.in)
		if len(tokens) != 1 {
			t.Fatalf("tokenize(%q): got %d tokens, want 1", c.in, len(tokens))
		}
		tok := tokens[0]
		if tok.kind != tokenSection {
			t.Errorf("tokenize(%q): kind = %v, want tokenSection", c.in, tok.kind)
		}
		if tok.label != c.label || tok.base != c.base {
			t.Errorf("tokenize(%q): label/base = %q/%q, want %q/%q", c.in, tok.label, tok.base, c.label, c.base)
		}
	}
}

func TestTokenizeUnknownBracketsAreText(t *testing.T) {
	for _, in := range []string{"[Bracketed]", "[Introduction]", "[Verse two]", "no tags at all"} {
		tokens := tokenize(in)
		if len(tokens) != 1 || tokens[0].kind != tokenText {
			t.Errorf("tokenize(%q): expected a single text token, got %v", in, tokens)
		}
	}
}

func TestTokenizeTilesTheBlob(t *testing.T) {
	blob := "[Intro]\n[ch]G[/ch] x2\n[tab][ch]C[/ch]\nHello[/tab] [Weird]"
	tokens := tokenize(blob)
	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	if tokens[0].start != 0 {
		t.Errorf("first token starts at %d, want 0", tokens[0].start)
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].start != tokens[i-1].end {
			t.Errorf("gap between token %d (end %d) and token %d (start %d)",
				i-1, tokens[i-1].end, i, tokens[i].start)
		}
	}
	if last := tokens[len(tokens)-1]; last.end != len(blob) {
		t.Errorf("last token ends at %d, want %d", last.end, len(blob))
	}
}
