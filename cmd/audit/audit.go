// Package audit implements the command that reports duplicate and
// reward-less cards in the remote store. This file contains the table
// rendering for the report.
package audit

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/cardcrawl/cmd/common"
	internalaudit "github.com/jonesrussell/cardcrawl/internal/audit"
	"github.com/jonesrussell/cardcrawl/internal/known"
)

// Command returns the audit command for use in the root command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report duplicate and reward-less cards in the store",
		Long: `Read-only report over the remote store: cards with zero category
reward rows (candidates for removal) and card pairs whose normalized
issuer and name look like the same product. Nothing is modified; use the
cleanup command to act on the report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			auditor := internalaudit.New(deps.NewCardRepository(), deps.Logger)
			rep, err := auditor.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			renderReport(rep)
			return nil
		},
	}
}

// renderReport prints the audit findings as tables.
func renderReport(rep *internalaudit.Report) {
	fmt.Printf("Total cards: %d\n\n", rep.TotalCards)

	if len(rep.NoRewards) == 0 {
		fmt.Println("No cards without category rewards.")
	} else {
		fmt.Printf("Cards without category rewards (%d):\n", len(rep.NoRewards))
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Card Key", "Name", "Issuer", "Curated"})
		for _, card := range rep.NoRewards {
			t.AppendRow(table.Row{card.CardKey, card.Name, card.Issuer, curatedMark(card.CardKey)})
		}
		t.Render()
	}
	fmt.Println()

	if len(rep.Duplicates) == 0 {
		fmt.Println("No duplicate card pairs found.")
		return
	}
	fmt.Printf("Probable duplicate pairs (%d):\n", len(rep.Duplicates))
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Card Key A", "Card Key B", "Name A", "Name B", "Similarity"})
	for _, pair := range rep.Duplicates {
		t.AppendRow(table.Row{
			pair.A.CardKey, pair.B.CardKey,
			pair.A.Name, pair.B.Name,
			fmt.Sprintf("%.2f", pair.Similarity),
		})
	}
	t.Render()
}

// curatedMark flags card keys that belong to the curated dataset; those
// rows point at missing child uploads rather than scraper junk.
func curatedMark(cardKey string) string {
	if _, ok := known.ByKey(cardKey); ok {
		return "yes"
	}
	return ""
}
