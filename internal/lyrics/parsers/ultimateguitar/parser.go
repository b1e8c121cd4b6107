package ultimateguitar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seancorc/AugmentedChords/internal/logger"
)

// ErrNoContent marks a page or blob that carried no parseable chord markup.
var ErrNoContent = errors.New("no chord content found")

// Parser handles Ultimate Guitar page fetching and chord sheet extraction
type Parser struct {
	client *Client
}

// NewParser creates a new Ultimate Guitar parser
func NewParser() *Parser {
	return &Parser{client: NewClient()}
}

// FetchSong searches Ultimate Guitar for the song and extracts the sheet of
// the first chord result.
func (p *Parser) FetchSong(songName string) (*SongSheet, error) {
	logger.Debug(fmt.Sprintf("FetchSong: searching for %q", songName))

	html, err := p.client.FetchPage(searchURL(songName))
	if err != nil {
		return Failure(err.Error()), err
	}

	data, err := decodePageData(html)
	if err != nil {
		logger.Error(fmt.Sprintf("FetchSong: failed to read search page for %q\nError: %v", songName, err))
		return Failure(err.Error()), err
	}

	result, err := pickChordResult(data.Results)
	if err != nil {
		logger.Error(fmt.Sprintf("FetchSong: %v for %q (%d results)", err, songName, len(data.Results)))
		return Failure(err.Error()), err
	}
	if result.TabURL == "" {
		err := fmt.Errorf("no tab URL found in the chord result")
		return Failure(err.Error()), err
	}

	logger.Debug(fmt.Sprintf("FetchSong: selected %q by %q", result.SongName, result.ArtistName))
	return p.fetchTab(absoluteTabURL(result.TabURL), &result)
}

// FetchTabURL extracts the sheet from a known tab page URL.
func (p *Parser) FetchTabURL(tabURL string) (*SongSheet, error) {
	return p.fetchTab(tabURL, nil)
}

func (p *Parser) fetchTab(tabURL string, fallback *searchResult) (*SongSheet, error) {
	html, err := p.client.FetchPage(tabURL)
	if err != nil {
		return Failure(err.Error()), err
	}

	data, err := decodePageData(html)
	if err != nil {
		logger.Error(fmt.Sprintf("fetchTab: failed to read chord page\nURL: %s\nError: %v", tabURL, err))
		return Failure(err.Error()), err
	}
	if data.TabView == nil {
		err := fmt.Errorf("no tab view found in the chord page")
		logger.Error(fmt.Sprintf("fetchTab: %v\nURL: %s", err, tabURL))
		return Failure(err.Error()), err
	}
	tv := data.TabView

	title, artist := tv.SongName, tv.ArtistName
	if fallback != nil {
		if title == "" {
			title = fallback.SongName
		}
		if artist == "" {
			artist = fallback.ArtistName
		}
	}
	if title == "" {
		title = "Unknown"
	}
	if artist == "" {
		artist = "Unknown"
	}

	lines, err := ParseContent(tv.WikiTab.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("fetchTab: %v\nURL: %s", err, tabURL))
		return Failure(err.Error()), err
	}

	logger.Success(fmt.Sprintf("fetchTab: extracted %d chord-lyric lines for %q by %q", len(lines), title, artist))

	return &SongSheet{
		Success:   true,
		SongTitle: title,
		Artist:    artist,
		Key:       InferKey(tv.TonalityName, lines),
		Capo:      tv.CapoValue(),
		Lines:     lines,
	}, nil
}

// ParseContent runs the full parsing pipeline over a markup blob: tokenize,
// segment into sections, classify lines, align chords against lyrics. It is
// a pure function and safe for concurrent use.
func ParseContent(blob string) ([]ChordLyricLine, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, ErrNoContent
	}

	tokens := tokenize(blob)
	lines := make([]ChordLyricLine, 0)
	for _, sec := range segment(blob, tokens) {
		classified := classify(sec.span(blob))
		if sec.base == "Intro" {
			processIntro(sec.label, classified, &lines)
		} else {
			processStandard(sec.label, classified, &lines)
		}
	}
	return lines, nil
}
