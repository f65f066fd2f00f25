// Package cleanup implements the operator-invoked command that deletes
// cards lacking category rewards.
package cleanup

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/cardcrawl/cmd/common"
	internalaudit "github.com/jonesrussell/cardcrawl/internal/audit"
	"github.com/jonesrussell/cardcrawl/internal/known"
)

// Command returns the cleanup command for use in the root command.
func Command() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete cards that have no category rewards",
		Long: `Deletes cards with zero category reward rows from the remote store.
Without --yes this is a dry run that only lists what would be deleted;
nothing is removed without explicit operator confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			auditor := internalaudit.New(deps.NewCardRepository(), deps.Logger)
			result, err := auditor.Cleanup(cmd.Context(), yes)
			if err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}

			if len(result.Candidates) == 0 {
				fmt.Println("No cards without category rewards; nothing to clean up.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			curated := 0
			t.AppendHeader(table.Row{"Card Key", "Name", "Issuer", "Curated"})
			for _, card := range result.Candidates {
				mark := ""
				if _, ok := known.ByKey(card.CardKey); ok {
					mark = "yes"
					curated++
				}
				t.AppendRow(table.Row{card.CardKey, card.Name, card.Issuer, mark})
			}
			t.Render()

			if curated > 0 {
				fmt.Printf("\nWarning: %d of these cards come from the curated dataset; "+
					"re-running upload restores them with their rewards.\n", curated)
			}

			if result.DryRun {
				fmt.Printf("\nDry run: %d cards would be deleted. Re-run with --yes to delete.\n",
					len(result.Candidates))
				return nil
			}
			fmt.Printf("\nDeleted %d of %d cards without category rewards.\n",
				result.Deleted, len(result.Candidates))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "actually delete; without it, dry run only")
	return cmd
}
