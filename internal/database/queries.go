package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, ns.String)
	if err == nil {
		return &t
	}

	t, err = time.Parse("2006-01-02 15:04:05", ns.String)
	if err == nil {
		return &t
	}

	t, err = time.Parse("2006-01-02T15:04:05.999999", ns.String)
	if err == nil {
		return &t
	}

	return nil
}

func marshalMonthStarts(jdns []int64) (string, error) {
	b, err := json.Marshal(jdns)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalMonthStarts(raw string) ([]int64, error) {
	var jdns []int64
	if raw == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(raw), &jdns); err != nil {
		return nil, err
	}
	return jdns, nil
}

// =============================================================================
// Year Table Queries
// =============================================================================

// GetYearTable retrieves the cached year table for (year, tz).
// Returns ErrNotFound if the year/tz pair hasn't been computed yet.
//
// The API calls it only to count cache hits and misses for /metrics;
// conversions never use the returned table.
func (db *DB) GetYearTable(ctx context.Context, year int, tz float64) (*YearTable, error) {
	query := `
		SELECT
			id, gregorian_year, tz,
			month11_anchor_jdn, leap_month_offset, month_start_jdns,
			computed_at
		FROM year_table
		WHERE gregorian_year = ? AND tz = ?
	`

	var t YearTable
	var monthStartsJSON string
	var computedAtStr sql.NullString

	err := db.QueryRowContext(ctx, query, year, tz).Scan(
		&t.ID,
		&t.GregorianYear,
		&t.TZ,
		&t.Month11AnchorJDN,
		&t.LeapMonthOffset,
		&monthStartsJSON,
		&computedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query year table: %w", err)
	}

	t.MonthStartJDNs, err = unmarshalMonthStarts(monthStartsJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal month_start_jdns: %w", err)
	}

	if ct := parseTimestamp(computedAtStr); ct != nil {
		t.ComputedAt = *ct
	}

	return &t, nil
}

// UpsertYearTable inserts or replaces the cached table for (year, tz).
//
// This is IDEMPOTENT - safe to run multiple times with the same data, and
// is how `calendargen warm` populates the cache ahead of traffic.
func (db *DB) UpsertYearTable(ctx context.Context, t *YearTable) error {
	monthStartsJSON, err := marshalMonthStarts(t.MonthStartJDNs)
	if err != nil {
		return fmt.Errorf("marshal month_start_jdns: %w", err)
	}

	query := `
		INSERT INTO year_table (
			gregorian_year, tz, month11_anchor_jdn, leap_month_offset,
			month_start_jdns, computed_at
		) VALUES (?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(gregorian_year, tz) DO UPDATE SET
			month11_anchor_jdn = excluded.month11_anchor_jdn,
			leap_month_offset = excluded.leap_month_offset,
			month_start_jdns = excluded.month_start_jdns,
			computed_at = datetime('now')
	`

	_, err = db.ExecContext(ctx, query,
		t.GregorianYear,
		t.TZ,
		t.Month11AnchorJDN,
		t.LeapMonthOffset,
		monthStartsJSON,
	)
	if err != nil {
		return fmt.Errorf("upsert year table: %w", err)
	}

	return nil
}

// DeleteYearTable removes a cached table by (year, tz).
// Returns ErrNotFound if the row doesn't exist.
func (db *DB) DeleteYearTable(ctx context.Context, year int, tz float64) error {
	query := `DELETE FROM year_table WHERE gregorian_year = ? AND tz = ?`

	result, err := db.ExecContext(ctx, query, year, tz)
	if err != nil {
		return fmt.Errorf("delete year table: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CacheStats summarizes the state of the persisted year-table cache.
type CacheStats struct {
	TotalRows    int        `json:"total_rows"`
	EarliestYear int        `json:"earliest_year"`
	LatestYear   int        `json:"latest_year"`
	LastComputed *time.Time `json:"last_computed,omitempty"`
}

// GetCacheStats returns statistics about the persisted year-table cache.
//
// It reports the row count, the earliest and latest cached years, and the
// newest computed_at timestamp.
func (db *DB) GetCacheStats(ctx context.Context) (*CacheStats, error) {
	query := `
		SELECT
			COUNT(*) as total_rows,
			COALESCE(MIN(gregorian_year), 0) as earliest_year,
			COALESCE(MAX(gregorian_year), 0) as latest_year,
			MAX(computed_at) as last_computed
		FROM year_table
	`

	var stats CacheStats
	var lastComputedStr sql.NullString

	err := db.QueryRowContext(ctx, query).Scan(
		&stats.TotalRows,
		&stats.EarliestYear,
		&stats.LatestYear,
		&lastComputedStr,
	)
	if err != nil {
		return nil, fmt.Errorf("query cache stats: %w", err)
	}

	stats.LastComputed = parseTimestamp(lastComputedStr)

	return &stats, nil
}
