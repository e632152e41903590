package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/tui"
)

func intakeCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Run the interactive intake wizard",
		Long: `Walks through the intake questionnaire in the terminal, shows the
classification preview and persists the session for later analysis.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			profile, classification, err := tui.Run(newEngine(cat))
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Println("Intake aborted.")
				return nil
			}

			if noSave {
				return nil
			}

			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			session := &model.Session{
				Profile:        *profile,
				Classification: *classification,
			}
			if err := store.SaveSession(cmd.Context(), session); err != nil {
				return err
			}
			slog.Info("Session saved", "session_id", session.ID)
			fmt.Printf("Session %s saved. Run 'brujula analyze' to review viability.\n", session.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip session persistence")
	return cmd
}
