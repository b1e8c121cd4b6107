package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seancorc/AugmentedChords/internal/lyrics/parsers/ultimateguitar"
)

// StoredSong is one persisted chord sheet, keyed by the normalized query
// that produced it.
type StoredSong struct {
	Query      string
	Title      string
	Artist     string
	Key        string
	Capo       sql.NullInt64
	Lines      string // JSON array of chord-lyric lines
	FetchCount int
}

func ensureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := Database.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS songs (
		query TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		song_key TEXT NOT NULL,
		capo INTEGER,
		lines TEXT NOT NULL,
		fetch_count INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}
	return nil
}

// SaveSheet upserts a successfully parsed sheet under its query.
func SaveSheet(ctx context.Context, query string, sheet *ultimateguitar.SongSheet) error {
	linesJSON, err := json.Marshal(sheet.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal lines: %w", err)
	}

	var capo sql.NullInt64
	if sheet.Capo != nil {
		capo = sql.NullInt64{Int64: int64(*sheet.Capo), Valid: true}
	}

	_, err = Database.ExecContext(ctx, `INSERT INTO songs (query, title, artist, song_key, capo, lines, fetch_count)
		VALUES (?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(query) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			song_key = excluded.song_key,
			capo = excluded.capo,
			lines = excluded.lines`,
		query, sheet.SongTitle, sheet.Artist, sheet.Key, capo, string(linesJSON))
	if err != nil {
		return fmt.Errorf("failed to save sheet: %w", err)
	}
	return nil
}

// FindSheet looks a stored sheet up by query, reporting whether one exists.
func FindSheet(ctx context.Context, query string) (*ultimateguitar.SongSheet, bool, error) {
	row := Database.QueryRowContext(ctx,
		"SELECT query, title, artist, song_key, capo, lines, fetch_count FROM songs WHERE query = ?", query)

	var stored StoredSong
	if err := row.Scan(&stored.Query, &stored.Title, &stored.Artist, &stored.Key, &stored.Capo, &stored.Lines, &stored.FetchCount); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to scan song row: %w", err)
	}

	var lines []ultimateguitar.ChordLyricLine
	if err := json.Unmarshal([]byte(stored.Lines), &lines); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal lines: %w", err)
	}

	sheet := &ultimateguitar.SongSheet{
		Success:   true,
		SongTitle: stored.Title,
		Artist:    stored.Artist,
		Key:       stored.Key,
		Lines:     lines,
	}
	if stored.Capo.Valid {
		capo := int(stored.Capo.Int64)
		sheet.Capo = &capo
	}
	return sheet, true, nil
}

// SheetStore adapts the package-level lookup for consumers that take an
// interface.
type SheetStore struct{}

func (SheetStore) FindSheet(ctx context.Context, query string) (*ultimateguitar.SongSheet, bool, error) {
	return FindSheet(ctx, query)
}

// IncrementFetchCount bumps the counter of a stored song.
func IncrementFetchCount(ctx context.Context, query string) error {
	result, err := Database.ExecContext(ctx, "UPDATE songs SET fetch_count = fetch_count + 1 WHERE query = ?", query)
	if err != nil {
		return fmt.Errorf("failed to increment fetch count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no song found with query: %s", query)
	}
	return nil
}
