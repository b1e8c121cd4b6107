package ultimateguitar

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Both the search page and the tab page embed their state as JSON inside a
// data-content attribute; the interesting part lives under store.page.data.

type pageStore struct {
	Store struct {
		Page struct {
			Data pageData `json:"data"`
		} `json:"page"`
	} `json:"store"`
}

type pageData struct {
	Results []searchResult `json:"results"`
	TabView *tabView       `json:"tab_view"`
}

type searchResult struct {
	Type       string `json:"type"`
	SongName   string `json:"song_name"`
	ArtistName string `json:"artist_name"`
	TabURL     string `json:"tab_url"`
}

type tabView struct {
	SongName     string          `json:"song_name"`
	ArtistName   string          `json:"artist_name"`
	TonalityName string          `json:"tonality_name"`
	Meta         json.RawMessage `json:"meta"`
	WikiTab      wikiTab         `json:"wiki_tab"`
}

type wikiTab struct {
	Content string `json:"content"`
}

// CapoValue digs the capo fret out of the tab metadata. The field is absent
// on most songs and meta itself is sometimes an empty array instead of an
// object, so any shape mismatch just means no capo.
func (tv *tabView) CapoValue() *int {
	if len(tv.Meta) == 0 {
		return nil
	}
	var meta struct {
		Capo *int `json:"capo"`
	}
	if err := json.Unmarshal(tv.Meta, &meta); err != nil {
		return nil
	}
	return meta.Capo
}

// decodePageData locates the data-content element in a fetched page and
// decodes the embedded store JSON.
func decodePageData(html string) (*pageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(`[data-content]`).First()
	if selection.Length() == 0 {
		return nil, fmt.Errorf("no data-content element found in the page")
	}

	raw, _ := selection.Attr("data-content")
	var store pageStore
	if err := json.Unmarshal([]byte(raw), &store); err != nil {
		return nil, fmt.Errorf("failed to decode data-content JSON: %w", err)
	}
	return &store.Store.Page.Data, nil
}

// pickChordResult returns the first search result of type "Chords".
func pickChordResult(results []searchResult) (searchResult, error) {
	for _, r := range results {
		if r.Type == "Chords" {
			return r, nil
		}
	}
	return searchResult{}, fmt.Errorf("no chord results found")
}
