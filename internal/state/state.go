package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/seancorc/AugmentedChords/internal/redis"
	"github.com/seancorc/AugmentedChords/internal/songs"
)

// HistoryManager keeps the recent-fetches list in memory and mirrors it to
// redis so it survives restarts.
type HistoryManager struct {
	mu     sync.RWMutex
	recent []songs.FetchRecord
	limit  int
	store  *redis.DBManager
}

func NewHistoryManager(store *redis.DBManager) *HistoryManager {
	return &HistoryManager{
		recent: []songs.FetchRecord{},
		limit:  20,
		store:  store,
	}
}

func (hm *HistoryManager) Init() error {
	ctx := context.Background()
	hm.mu.Lock()
	defer hm.mu.Unlock()
	recent, err := hm.store.GetRecent(ctx)
	if err != nil {
		return err
	}
	hm.recent = recent
	return nil
}

// Add prepends a record, trims to the limit and syncs to redis.
func (hm *HistoryManager) Add(ctx context.Context, record songs.FetchRecord) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.recent = append([]songs.FetchRecord{record}, hm.recent...)
	if len(hm.recent) > hm.limit {
		hm.recent = hm.recent[:hm.limit]
	}
	if err := hm.store.SetRecent(ctx, hm.recent); err != nil {
		fmt.Printf("error happened while updating the redis recent list: %s", err)
		return err
	}
	return nil
}

// Recent returns a copy of the list, newest first.
func (hm *HistoryManager) Recent() []songs.FetchRecord {
	hm.mu.RLock()
	defer hm.mu.RUnlock()
	recent := append([]songs.FetchRecord(nil), hm.recent...)
	sort.Sort(sort.Reverse(songs.ByFetchedAt(recent)))
	return recent
}

func (hm *HistoryManager) Clear(ctx context.Context) error {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.recent = []songs.FetchRecord{}
	if err := hm.store.SetRecent(ctx, hm.recent); err != nil {
		fmt.Printf("error happened while clearing the redis recent list: %s", err)
		return err
	}
	return nil
}
