package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacykim/disSat/internal/config"
)

var relationsCmd = &cobra.Command{
	Use:   "relations",
	Short: "List the active scaling relations",
	Long: `Shows the relation filling each pipeline slot for the given (or default)
run configuration, with each relation's scatter and whether it is sampled.`,
	RunE: runRelations,
}

func init() {
	relationsCmd.Flags().StringVarP(&configPath, "config", "c", "", "run configuration file (yaml)")
}

func runRelations(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	p, err := cfg.BuildPopulation(1)
	if err != nil {
		return err
	}

	for _, line := range p.DescribeRelations() {
		fmt.Println(line)
	}
	fmt.Printf("\nhost: %s (%.3g Msun, %s)  dark matter: %s\n",
		p.Host.Name, p.Host.Mass, p.Host.Def, p.DarkMatter.Name())
	return nil
}
