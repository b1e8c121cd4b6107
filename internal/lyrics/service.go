package lyrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/seancorc/AugmentedChords/internal/logger"
	"github.com/seancorc/AugmentedChords/internal/lyrics/parsers/ultimateguitar"
	"github.com/seancorc/AugmentedChords/internal/redis"
	"github.com/seancorc/AugmentedChords/internal/utils"
)

// SheetStore looks up previously persisted sheets by normalized query.
type SheetStore interface {
	FindSheet(ctx context.Context, query string) (*ultimateguitar.SongSheet, bool, error)
}

// Service handles chord sheet extraction for different sources
type Service struct {
	ugParser *ultimateguitar.Parser
	cache    *redis.DBManager
	store    SheetStore
}

// NewService creates a new lyrics service. A nil cache or store disables
// that lookup tier (CLI mode runs with neither).
func NewService(cache *redis.DBManager, store SheetStore) *Service {
	return &Service{
		ugParser: ultimateguitar.NewParser(),
		cache:    cache,
		store:    store,
	}
}

// FetchBySongName resolves a song query to a chord sheet: cache first, then
// the persisted store, then a live scrape. The parser itself stays
// cache-free; caching lives here at the transport layer.
func (s *Service) FetchBySongName(ctx context.Context, songName string) (*ultimateguitar.SongSheet, error) {
	query := utils.NormalizeQuery(songName)

	if s.cache != nil {
		sheet, found, err := s.cache.GetSheet(ctx, query)
		if err != nil {
			logger.Error(fmt.Sprintf("cache lookup failed for %q: %v", query, err))
		} else if found {
			logger.Debug(fmt.Sprintf("cache hit for %q", query))
			return sheet, nil
		}
	}

	if s.store != nil {
		sheet, found, err := s.store.FindSheet(ctx, query)
		if err != nil {
			logger.Error(fmt.Sprintf("store lookup failed for %q: %v", query, err))
		} else if found {
			logger.Debug(fmt.Sprintf("store hit for %q", query))
			if s.cache != nil {
				if err := s.cache.SetSheet(ctx, query, sheet); err != nil {
					logger.Error(fmt.Sprintf("cache backfill failed for %q: %v", query, err))
				}
			}
			return sheet, nil
		}
	}

	sheet, err := s.ugParser.FetchSong(songName)
	if err != nil {
		return sheet, err
	}

	if s.cache != nil && sheet.Success {
		if err := s.cache.SetSheet(ctx, query, sheet); err != nil {
			logger.Error(fmt.Sprintf("cache store failed for %q: %v", query, err))
		}
	}
	return sheet, nil
}

// ExtractFromURL extracts a chord sheet from a URL based on the source
func (s *Service) ExtractFromURL(ctx context.Context, url string) (*ultimateguitar.SongSheet, error) {
	if strings.Contains(url, "ultimate-guitar.com") {
		logger.Debug("Detected ultimate-guitar.com URL, using UG parser")
		return s.ugParser.FetchTabURL(url)
	}

	// Add other parsers here as needed
	logger.Error(fmt.Sprintf("Unsupported URL source: %s", url))
	return nil, fmt.Errorf("unsupported URL source: %s", url)
}
