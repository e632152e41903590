package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the template catalog",
	}
	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogResolveCmd())
	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog keys and descriptions",
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Print(cat.Summary())
			fmt.Printf("(%d templates)\n", cat.Len())
			return nil
		},
	}
}

func catalogResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [label]...",
		Short: "Resolve rule labels against the catalog",
		Long: `Shows which catalog keys a list of hand-authored labels resolves to,
using the same normalization and containment fallback as the engine.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			keys := cat.Resolve(args)
			if len(keys) == 0 {
				fmt.Println("(no labels resolved)")
				return nil
			}
			fmt.Println(strings.Join(keys, "\n"))
			return nil
		},
	}
}
