package songs

import "time"

// FetchRecord remembers one served chord sheet request.
type FetchRecord struct {
	Query       string    `json:"query"`
	SongTitle   string    `json:"song_title"`
	Artist      string    `json:"artist"`
	RequestedBy string    `json:"requested_by"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type ByFetchedAt []FetchRecord

func (a ByFetchedAt) Len() int           { return len(a) }
func (a ByFetchedAt) Less(i, j int) bool { return a[i].FetchedAt.Before(a[j].FetchedAt) }
func (a ByFetchedAt) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
