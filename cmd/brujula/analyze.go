package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/julialegal/brujula/internal/expand"
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/storage"
	"github.com/julialegal/brujula/internal/webhook"
)

func analyzeCmd() *cobra.Command {
	var (
		dryRun  bool
		deliver bool
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [profile.json]",
		Short: "Classify a profile and run the viability review",
		Long: `Classifies the profile, sends the narrowed candidate set through the
generative viability review and prints the verdict. The session is persisted
locally; with --deliver the result is also posted to the configured webhook.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := readProfile(args[0])
			if err != nil {
				return err
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			classification := newEngine(cat).Classify(profile)

			var expander expand.Expander
			if dryRun {
				expander = &expand.MockExpander{}
			} else {
				expander, err = expand.NewGemini(ctx,
					viper.GetString("gemini.api_key"),
					viper.GetString("gemini.model"),
					cat)
				if err != nil {
					return err
				}
			}
			defer func() { _ = expander.Close() }()

			analysis, err := expander.Analyze(ctx, profile, classification)
			if err != nil {
				return err
			}

			session := &model.Session{
				Profile:        *profile,
				Classification: classification,
				Analysis:       analysis,
			}

			if !noSave {
				store, storeErr := openStorage(ctx)
				if storeErr != nil {
					return storeErr
				}
				defer func() { _ = store.Close() }()

				if saveErr := store.SaveSession(ctx, session); saveErr != nil {
					return saveErr
				}
				slog.Info("Session saved", "session_id", session.ID)

				if deliver {
					if deliverErr := deliverSession(ctx, store, session); deliverErr != nil {
						return deliverErr
					}
				}
			} else if deliver {
				return fmt.Errorf("--deliver requires session persistence; drop --no-save")
			}

			return writeJSON(struct {
				Classification model.Classification `json:"classification"`
				Analysis       *model.Analysis      `json:"analysis"`
				SessionID      string               `json:"sessionId,omitempty"`
			}{classification, analysis, session.ID})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "use the deterministic mock reviewer instead of the Gemini API")
	cmd.Flags().BoolVar(&deliver, "deliver", false, "post the analysis to the configured webhook")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip session persistence")
	return cmd
}

func deliverSession(ctx context.Context, store *storage.SQLiteStorage, session *model.Session) error {
	sender, err := webhook.NewSender(viper.GetString("webhook.url"))
	if err != nil {
		return err
	}

	err = sender.Send(ctx, webhook.Payload{
		Profile:   session.Profile,
		Analysis:  *session.Analysis,
		Action:    string(session.Analysis.NextStepAction),
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	return store.MarkDelivered(ctx, session.ID, time.Now().UTC())
}
