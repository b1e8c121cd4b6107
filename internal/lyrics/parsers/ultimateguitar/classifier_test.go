package ultimateguitar

import "testing"

func kinds(lines []classifiedLine) []lineKind {
	out := make([]lineKind, len(lines))
	for i, l := range lines {
		out[i] = l.kind
	}
	return out
}

func TestClassifyRawSpan(t *testing.T) {
	span := "[Verse]\n[ch]C[/ch]\nHello\n\n   "
	lines := classify(span)

	want := []lineKind{lineNoise, lineChord, lineLyric, lineBlank, lineBlank}
	got := kinds(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d kind = %v, want %v", i, got[i], want[i])
		}
	}
	if lines[2].text != "Hello" {
		t.Errorf("lyric line text = %q, want %q", lines[2].text, "Hello")
	}
}

func TestClassifyPrefersTabBlocks(t *testing.T) {
	span := "[Verse]\ndecoration outside\n[tab][ch]C[/ch]\nHello world[/tab]\nmore outside"
	lines := classify(span)

	want := []lineKind{lineChord, lineLyric}
	got := kinds(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: content outside [tab] blocks must be ignored", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClassifyKeepsMultipleTabBlocksInOrder(t *testing.T) {
	span := "[tab][ch]C[/ch]\nfirst[/tab]\nskip\n[tab][ch]G[/ch]\nsecond[/tab]"
	lines := classify(span)

	// blocks in document order, separated by a blank boundary line
	want := []lineKind{lineChord, lineLyric, lineBlank, lineChord, lineLyric}
	got := kinds(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d kind = %v, want %v", i, got[i], want[i])
		}
	}
	if lines[1].text != "first" || lines[4].text != "second" {
		t.Errorf("block lyrics = %q, %q, want first/second in order", lines[1].text, lines[4].text)
	}
}

func TestClassifyLeakedMarkerIsNoise(t *testing.T) {
	line := classifyLine("echo of [Chorus] marker")
	if line.kind != lineNoise {
		t.Errorf("kind = %v, want lineNoise for a line containing a section marker", line.kind)
	}
}

func TestClassifyUnmatchedTabOpenFallsBackToRawLines(t *testing.T) {
	span := "[tab][ch]C[/ch]\nHello"
	lines := classify(span)

	// no complete block, so raw span lines are used
	want := []lineKind{lineChord, lineLyric}
	got := kinds(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
}
