package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julialegal/brujula/internal/golden"
)

func goldenCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Run the golden-case scenario suite against the engine",
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			runner := golden.NewRunner(newEngine(cat), true)
			report := runner.Run(golden.Cases(), tag)
			golden.WriteReport(os.Stdout, report)

			if !report.OK() {
				return fmt.Errorf("%d scenario(s) failed", len(report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "run only scenarios carrying this tag (e.g. core)")
	return cmd
}
