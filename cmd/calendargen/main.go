// Package main is the entry point for calendargen, the offline companion
// CLI to the vnlunar calendar API: printing year tables, warming the
// persisted cache, and verifying round-trip conversions over a range.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/vietculture/vnlunar-calendar/cmd/calendargen/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calendargen",
		Short: "Vietnamese lunar calendar generation and verification tool",
		Long: `calendargen computes and inspects the Vietnamese lunisolar calendar
outside of the HTTP API: printing a year's lunar month table, warming the
persisted year-table cache ahead of traffic, and verifying that solar/lunar
round-trip conversions hold over a range of years.`,
	}

	rootCmd.AddCommand(commands.NewTableCommand())
	rootCmd.AddCommand(commands.NewWarmCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
