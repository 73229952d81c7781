// Command dissat generates synthetic dwarf satellite populations around a
// host halo from empirically calibrated scaling relations.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dissat",
	Short: "Monte Carlo generator of dwarf satellite populations",
	Long: `dissat samples synthetic satellite galaxy populations around a host halo
using calibrated scaling relations: a subhalo mass function, concentration-
mass relations, stellar-mass--halo-mass relations, galaxy size relations,
occupation fractions, and velocity dispersion predictions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd, relationsCmd, runsCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
