package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/stacykim/disSat/internal/catalog"
)

var (
	runsDB    string
	runsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored realizations",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "data/dissat.db", "catalog database path")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	db, err := catalog.Open(runsDB)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No stored runs.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  seed=%d  satellites=%s  luminous=%s\n",
			r.ID,
			humanize.Time(r.CreatedAt),
			r.Seed,
			humanize.Comma(int64(r.Satellites)),
			humanize.Comma(int64(r.Luminous)),
		)
	}
	return nil
}
