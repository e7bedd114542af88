package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1YearCacheSchema,
}

// migrationV1YearCacheSchema creates the persisted year-table cache.
//
// Key design decisions:
//
// 1. KEYED BY (gregorian_year, tz), NOT BY DATE
//   - One row summarizes an entire Gregorian year's lunar months at a
//     given local offset. There is no per-date row.
//
// 2. MONTH START JDNS AS JSON
//   - month_start_jdns stores the ordered list of day numbers each lunar
//     month starting in the year begins on, as a JSON array of integers.
//   - A whole year is written or read as a single row.
//
// 3. NO FOREIGN KEYS
//   - year_table rows are independent computed facts, not relational data.
const migrationV1YearCacheSchema = `
-- Migration 001: lunar year cache
-- Persists precomputed lunar year tables. Conversions do not read them
-- back; the API only counts lookups against them.

CREATE TABLE IF NOT EXISTS year_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- The Gregorian year this table summarizes, and the local offset
    -- (hours) it was computed at. A year has a different month-11 anchor
    -- and leap-month placement at different offsets near a new-moon
    -- boundary, so both fields together form the natural key.
    gregorian_year INTEGER NOT NULL,
    tz REAL NOT NULL,

    -- Day number (JDN truncated to local noon) of the new moon beginning
    -- the first non-leap month 11 that starts within gregorian_year.
    month11_anchor_jdn INTEGER NOT NULL,

    -- 1-based position of the leap month within month_start_jdns, or 0 if
    -- no month starting in gregorian_year is a leap month.
    leap_month_offset INTEGER NOT NULL DEFAULT 0,

    -- JSON array of day numbers, one per lunar month starting in
    -- gregorian_year, in chronological order.
    month_start_jdns TEXT NOT NULL DEFAULT '[]',

    computed_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (gregorian_year, tz)
);

-- Primary lookup: find a year's table at a given offset.
CREATE INDEX IF NOT EXISTS idx_year_table_year_tz
    ON year_table(gregorian_year, tz);
`
