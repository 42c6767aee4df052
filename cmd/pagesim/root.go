package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "pagesim drives the interactive parts of a landing page.",
	Long: `pagesim loads a landing page, wires its interactive components ` +
		`(cursor, carousel, counters, FAQ, navigation and contact form) and ` +
		`replays a script of visitor input against them in virtual time.`,
	SilenceUsage: true,
}
