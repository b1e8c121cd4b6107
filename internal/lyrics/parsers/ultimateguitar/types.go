package ultimateguitar

// ChordLyricLine is one aligned row of a chord sheet: the chords of a single
// source line, their character offsets into the paired lyric, and the lyric
// itself (nil for instrumental lines).
type ChordLyricLine struct {
	Section        string   `json:"section"`
	Chords         []string `json:"chords"`
	ChordPositions []int    `json:"chord_positions"`
	Lyrics         *string  `json:"lyrics"`
	RepeatInfo     *string  `json:"repeat_info"`
}

// SongSheet is the envelope handed to downstream consumers.
type SongSheet struct {
	Success   bool             `json:"success"`
	SongTitle string           `json:"song_title,omitempty"`
	Artist    string           `json:"artist,omitempty"`
	Key       string           `json:"key,omitempty"`
	Capo      *int             `json:"capo"`
	Lines     []ChordLyricLine `json:"lines,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Failure builds the envelope for an extraction that produced no usable data.
func Failure(reason string) *SongSheet {
	return &SongSheet{Success: false, Error: reason}
}
