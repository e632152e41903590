package main

import (
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [profile.json]",
		Short: "Classify an intake profile into a flow and candidate templates",
		Long: `Reads a profile JSON (use "-" for stdin), runs the pre-classification
rules and prints the flow category with the ordered candidate template keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			profile, err := readProfile(args[0])
			if err != nil {
				return err
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			result := newEngine(cat).Classify(profile)
			return writeJSON(result)
		},
	}
	return cmd
}
