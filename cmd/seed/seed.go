// Package seed implements the command that uploads the curated
// known-card dataset to the remote store.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/cardcrawl/cmd/common"
	"github.com/jonesrussell/cardcrawl/internal/known"
	"github.com/jonesrussell/cardcrawl/internal/report"
)

// Command returns the seed command for use in the root command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upload the curated known-card dataset to the store",
		Long: `Upserts every card in the hand-curated dataset, with its category
rewards and signup bonus, into the remote store. Safe to re-run: upserts
are keyed by card_key and create no duplicate rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			cards := known.Cards()
			for i := range cards {
				if validateErr := cards[i].Validate(); validateErr != nil {
					return fmt.Errorf("curated dataset is invalid: %w", validateErr)
				}
			}
			deps.Logger.Info("seeding curated cards", "count", len(cards))

			repo := deps.NewCardRepository()
			results := repo.Upload(cmd.Context(), cards)

			runReport := report.New()
			for _, uploadErr := range results.Errors {
				runReport.Add(uploadErr)
			}
			deps.Logger.Info("seed finished",
				"inserted", results.CardsInserted,
				"updated", results.CardsUpdated,
				"category_rewards", results.CategoryRewards,
				"signup_bonuses", results.SignupBonuses)
			runReport.Log(deps.Logger)

			return nil
		},
	}
}
