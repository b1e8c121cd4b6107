package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/seancorc/AugmentedChords/internal/lyrics/parsers/ultimateguitar"
	"github.com/seancorc/AugmentedChords/internal/songs"
	"github.com/seancorc/AugmentedChords/internal/utils"
)

const (
	sheetKeyPrefix = "sheet:"
	recentKey      = "recent"
	sheetTTL       = 24 * time.Hour
)

type DBManager struct {
	client *redisClient.Client
}

func NewDBManager() *DBManager {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load db env %s.", err)
		os.Exit(1)
	}
	opt, _ := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	client := redisClient.NewClient(opt)

	return &DBManager{client: client}
}

// GetSheet retrieves a cached chord sheet for a normalized query, reporting
// whether one was present.
func (redis *DBManager) GetSheet(ctx context.Context, query string) (*ultimateguitar.SongSheet, bool, error) {
	data, err := redis.client.Get(ctx, sheetKeyPrefix+query).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var sheet ultimateguitar.SongSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, false, err
	}
	return &sheet, true, nil
}

// SetSheet caches a finished chord sheet under its normalized query.
func (redis *DBManager) SetSheet(ctx context.Context, query string, sheet *ultimateguitar.SongSheet) error {
	sheetJSON, err := json.Marshal(sheet)
	if err != nil {
		return err
	}
	return redis.client.Set(ctx, sheetKeyPrefix+query, sheetJSON, sheetTTL).Err()
}

// SetRecent stores the entire recent-fetches list.
func (redis *DBManager) SetRecent(ctx context.Context, list []songs.FetchRecord) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return redis.client.Set(ctx, recentKey, listJSON, 0).Err()
}

// GetRecent retrieves the recent-fetches list.
func (redis *DBManager) GetRecent(ctx context.Context) ([]songs.FetchRecord, error) {
	data, err := redis.client.Get(ctx, recentKey).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return []songs.FetchRecord{}, nil
		}
		return nil, err
	}
	var list []songs.FetchRecord
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
