// Package commands implements the calendargen subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietculture/vnlunar-calendar/internal/database"
	"github.com/vietculture/vnlunar-calendar/vnlunar"
)

// monthEntry is one lunar month's starting solar date, as printed by
// `calendargen table` and persisted by `calendargen warm`.
type monthEntry struct {
	startJDN int64
	month    int
	isLeap   bool
}

// walkYear returns the lunar months that start within Gregorian year, at
// local offset tz (hours), by converting every day of the year and
// recording month-boundary crossings.
func walkYear(year int, tz float64) ([]monthEntry, error) {
	start, err := vnlunar.NewSolarDate(year, 1, 1)
	if err != nil {
		return nil, err
	}
	end, err := vnlunar.NewSolarDate(year, 12, 31)
	if err != nil {
		return nil, err
	}

	var months []monthEntry
	for jdn := start.JDN(); jdn <= end.JDN(); jdn++ {
		d := vnlunar.SolarDateFromJDN(jdn)
		lunar, err := d.ToLunar(tz)
		if err != nil {
			return nil, err
		}
		if lunar.Day != 1 {
			continue
		}
		months = append(months, monthEntry{startJDN: jdn, month: lunar.Month, isLeap: lunar.IsLeap})
	}
	return months, nil
}

// NewTableCommand prints the lunar months starting within a Gregorian year.
func NewTableCommand() *cobra.Command {
	var year int
	var tz float64

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the lunar month table for a Gregorian year",
		RunE: func(cmd *cobra.Command, args []string) error {
			months, err := walkYear(year, tz)
			if err != nil {
				return fmt.Errorf("walk year %d: %w", year, err)
			}

			fmt.Printf("Lunar months starting in %d (tz=%.1f):\n", year, tz)
			for _, m := range months {
				d := vnlunar.SolarDateFromJDN(m.startJDN)
				label := fmt.Sprintf("tháng %d", m.month)
				if m.isLeap {
					label += " (nhuận)"
				}
				fmt.Printf("  %s starts %s\n", label, d.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Gregorian year (required)")
	cmd.Flags().Float64Var(&tz, "tz", vnlunar.DefaultTZ, "local offset in hours")
	cmd.MarkFlagRequired("year")

	return cmd
}

// NewWarmCommand populates the persisted year-table cache for a range of
// Gregorian years, ahead of API traffic.
func NewWarmCommand() *cobra.Command {
	var startYear, endYear int
	var tz float64
	var dbPath string

	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Populate the persisted year-table cache for a range of years",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			db, err := database.Open(database.DefaultConfig(dbPath), logger)
			if err != nil {
				return fmt.Errorf("open cache database: %w", err)
			}
			defer db.Close()

			ctx := context.Background()
			if _, err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate cache database: %w", err)
			}

			for year := startYear; year <= endYear; year++ {
				months, err := walkYear(year, tz)
				if err != nil {
					return fmt.Errorf("walk year %d: %w", year, err)
				}

				table := &database.YearTable{GregorianYear: year, TZ: tz}
				for i, m := range months {
					table.MonthStartJDNs = append(table.MonthStartJDNs, m.startJDN)
					if m.month == 11 && !m.isLeap && table.Month11AnchorJDN == 0 {
						table.Month11AnchorJDN = m.startJDN
					}
					if m.isLeap {
						table.LeapMonthOffset = i + 1
					}
				}

				if err := db.UpsertYearTable(ctx, table); err != nil {
					return fmt.Errorf("persist year %d: %w", year, err)
				}
				logger.Info("warmed year table", slog.Int("year", year), slog.Float64("tz", tz))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&startYear, "start-year", 0, "first Gregorian year to warm (required)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "last Gregorian year to warm, inclusive (required)")
	cmd.Flags().Float64Var(&tz, "tz", vnlunar.DefaultTZ, "local offset in hours")
	cmd.Flags().StringVar(&dbPath, "db", "./data/vnlunar-cache.db", "path to the SQLite cache database")
	cmd.MarkFlagRequired("start-year")
	cmd.MarkFlagRequired("end-year")

	return cmd
}

// NewVerifyCommand round-trips solar -> lunar -> solar for every day in a
// range of years and reports any date that fails to reconstruct.
func NewVerifyCommand() *cobra.Command {
	var startYear, endYear int
	var tz float64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify solar/lunar round-trip conversions over a range of years",
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			checked := 0

			for year := startYear; year <= endYear; year++ {
				start, err := vnlunar.NewSolarDate(year, 1, 1)
				if err != nil {
					return fmt.Errorf("start of year %d: %w", year, err)
				}
				end, err := vnlunar.NewSolarDate(year, 12, 31)
				if err != nil {
					return fmt.Errorf("end of year %d: %w", year, err)
				}

				for jdn := start.JDN(); jdn <= end.JDN(); jdn++ {
					solar := vnlunar.SolarDateFromJDN(jdn)
					checked++

					lunar, err := solar.ToLunar(tz)
					if err != nil {
						fmt.Printf("FAIL %s: ToLunar: %v\n", solar, err)
						failures++
						continue
					}

					back, err := lunar.ToSolar(tz)
					if err != nil {
						fmt.Printf("FAIL %s -> %s: ToSolar: %v\n", solar, lunar, err)
						failures++
						continue
					}

					if back != solar {
						fmt.Printf("FAIL %s -> %s -> %s: round trip mismatch\n", solar, lunar, back)
						failures++
					}
				}
			}

			fmt.Printf("checked %d dates, %d failures\n", checked, failures)
			if failures > 0 {
				return fmt.Errorf("%d round-trip failures", failures)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&startYear, "start-year", 0, "first Gregorian year to verify (required)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "last Gregorian year to verify, inclusive (required)")
	cmd.Flags().Float64Var(&tz, "tz", vnlunar.DefaultTZ, "local offset in hours")
	cmd.MarkFlagRequired("start-year")
	cmd.MarkFlagRequired("end-year")

	return cmd
}
