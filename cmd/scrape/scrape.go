// Package scrape implements the command that runs the full collection
// pipeline: fetch comparison pages, normalize against curated truth,
// upload to the remote store.
package scrape

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/cardcrawl/cmd/common"
	"github.com/jonesrussell/cardcrawl/internal/known"
	"github.com/jonesrussell/cardcrawl/internal/normalizer"
	"github.com/jonesrussell/cardcrawl/internal/report"
	"github.com/jonesrussell/cardcrawl/internal/scraper"
)

// Command returns the scrape command for use in the root command.
func Command() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape comparison sites and upload validated cards",
		Long: `Fetches each configured comparison page sequentially, extracts
candidate card records, reconciles them against the curated dataset
(curated values win), deduplicates by card key, and upserts the result.
A failed page or card is reported and skipped, never fatal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			runReport := report.New()

			s := scraper.New(scraper.Config{
				UserAgent:      deps.Config.Scraper.UserAgent,
				RequestTimeout: deps.Config.Scraper.RequestTimeout,
				Delay:          deps.Config.Scraper.Delay,
			}, deps.Logger)

			result, err := s.Run(cmd.Context(), deps.Config.Scraper.Sources)
			if err != nil {
				return err
			}
			runReport.AddAll(result.Errors)
			deps.Logger.Info("scrape finished",
				"sources", len(deps.Config.Scraper.Sources),
				"candidates", len(result.Candidates))

			normalized := normalizer.Normalize(result.Candidates, known.Cards())
			for _, mismatch := range normalized.Mismatches {
				runReport.Add(mismatch)
			}
			runReport.AddAll(normalized.Invalid)
			deps.Logger.Info("normalization finished",
				"cards", len(normalized.Cards),
				"mismatches", len(normalized.Mismatches),
				"invalid", len(normalized.Invalid))

			if dryRun {
				deps.Logger.Info("dry run, skipping upload")
				runReport.Log(deps.Logger)
				return nil
			}

			repo := deps.NewCardRepository()
			results := repo.Upload(cmd.Context(), normalized.Cards)
			for _, uploadErr := range results.Errors {
				runReport.Add(uploadErr)
			}
			deps.Logger.Info("upload finished",
				"inserted", results.CardsInserted,
				"updated", results.CardsUpdated)

			runReport.Log(deps.Logger)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "scrape and normalize without uploading")
	return cmd
}
