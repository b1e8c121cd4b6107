package ultimateguitar

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseContentVerseChorus(t *testing.T) {
	blob := "[Verse]\n[ch]C[/ch][ch]Am[/ch]\nHello there\n[Chorus]\n[ch]F[/ch]\nSing"
	lines, err := ParseContent(blob)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	verse := lines[0]
	if verse.Section != "Verse" {
		t.Errorf("section = %q, want Verse", verse.Section)
	}
	if !reflect.DeepEqual(verse.Chords, []string{"C", "Am"}) {
		t.Errorf("verse chords = %v, want [C Am]", verse.Chords)
	}
	if verse.Lyrics == nil || *verse.Lyrics != "Hello there" {
		t.Fatalf("verse lyrics = %v, want Hello there", verse.Lyrics)
	}
	checkPositionInvariant(t, verse)

	chorus := lines[1]
	if chorus.Section != "Chorus" {
		t.Errorf("section = %q, want Chorus", chorus.Section)
	}
	if !reflect.DeepEqual(chorus.Chords, []string{"F"}) {
		t.Errorf("chorus chords = %v, want [F]", chorus.Chords)
	}
	if chorus.Lyrics == nil || *chorus.Lyrics != "Sing" {
		t.Fatalf("chorus lyrics = %v, want Sing", chorus.Lyrics)
	}
	checkPositionInvariant(t, chorus)
}

func TestParseContentNoSectionLabels(t *testing.T) {
	lines, err := ParseContent("[ch]C[/ch][ch]Am[/ch]\nHello there")
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Section != "" {
		t.Errorf("implicit section = %q, want empty", lines[0].Section)
	}
	if !reflect.DeepEqual(lines[0].Chords, []string{"C", "Am"}) {
		t.Errorf("chords = %v, want [C Am]", lines[0].Chords)
	}
	checkPositionInvariant(t, lines[0])
}

func TestParseContentIntro(t *testing.T) {
	lines, err := ParseContent("[Intro]\n[ch]G[/ch][ch]D[/ch][ch]Em[/ch] x2")
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line.Section != "Intro" {
		t.Errorf("section = %q, want Intro", line.Section)
	}
	if !reflect.DeepEqual(line.ChordPositions, []int{0, 10, 20}) {
		t.Errorf("positions = %v, want [0 10 20]", line.ChordPositions)
	}
	if line.Lyrics != nil {
		t.Errorf("intro lyrics = %q, want nil", *line.Lyrics)
	}
	if line.RepeatInfo == nil || *line.RepeatInfo != "x2" {
		t.Errorf("repeat = %v, want x2", line.RepeatInfo)
	}
}

func TestParseContentTabBlock(t *testing.T) {
	blob := "[Verse]\n[tab][ch]C[/ch]   [ch]G[/ch]\nHello world[/tab]\nnot part of the block"
	lines, err := ParseContent(blob)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: text outside the tab block is ignored", len(lines))
	}
	if lines[0].Lyrics == nil || *lines[0].Lyrics != "Hello world" {
		t.Fatalf("lyrics = %v, want Hello world", lines[0].Lyrics)
	}
	checkPositionInvariant(t, lines[0])
}

func TestParseContentRescalesInflatedOffsets(t *testing.T) {
	// the raw chord line is much wider than the lyric, so offsets rescale
	blob := "[Verse]\n[ch]C[/ch]                    [ch]G[/ch]\nHello"
	lines, err := ParseContent(blob)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	checkPositionInvariant(t, lines[0])
	last := lines[0].ChordPositions[len(lines[0].ChordPositions)-1]
	if last != len("Hello")-1 {
		t.Errorf("last position = %d, want %d (rescaled and clamped into the lyric)", last, len("Hello")-1)
	}
}

func TestParseContentDropsMalformedChordLine(t *testing.T) {
	lines, err := ParseContent("[Verse]\n[ch][/ch]\nwords")
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestParseContentEmptyBlob(t *testing.T) {
	for _, blob := range []string{"", "   \n\t\n"} {
		if _, err := ParseContent(blob); !errors.Is(err, ErrNoContent) {
			t.Errorf("ParseContent(%q) error = %v, want ErrNoContent", blob, err)
		}
	}
}

func TestParseContentIsDeterministic(t *testing.T) {
	blob := "[Intro]\n[ch]G[/ch][ch]D[/ch]\n[Verse]\n[ch]C[/ch][ch]Am[/ch]\nHello there\n[ch]F[/ch]\n[ch]G[/ch]\nBye"
	first, err := ParseContent(blob)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	second, err := ParseContent(blob)
	if err != nil {
		t.Fatalf("ParseContent failed on second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("ParseContent is not deterministic over the same blob")
	}
}
