// Package audit implements the read-only duplicate report over the
// remote store and the operator-invoked cleanup of reward-less cards.
package audit

import (
	"context"
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/store"
)

// nearMatchThreshold is the Jaro-Winkler similarity above which two
// distinct normalized names are reported as a probable duplicate pair.
const nearMatchThreshold = 0.95

// Repository is the store surface the auditor reads (and, for cleanup,
// deletes) through.
type Repository interface {
	ListCards(ctx context.Context) ([]store.CardSummary, error)
	CardIDsWithRewards(ctx context.Context) (map[string]int, error)
	DeleteCard(ctx context.Context, id string) error
}

// DuplicatePair is two cards that look like the same product.
type DuplicatePair struct {
	A          store.CardSummary
	B          store.CardSummary
	Similarity float64
}

// Report is the auditor's output.
type Report struct {
	TotalCards int
	// NoRewards are cards with zero category reward rows, candidates for
	// removal.
	NoRewards []store.CardSummary
	// Duplicates are card pairs sharing a normalized (issuer, name) or
	// nearly so.
	Duplicates []DuplicatePair
}

// Auditor produces duplicate reports.
type Auditor struct {
	repo Repository
	log  logger.Interface
}

// New creates an auditor.
func New(repo Repository, log logger.Interface) *Auditor {
	return &Auditor{repo: repo, log: log}
}

// Run queries the store and builds the report. Read-only.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	cards, err := a.repo.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	rewardCounts, err := a.repo.CardIDsWithRewards(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{TotalCards: len(cards)}
	for _, card := range cards {
		if rewardCounts[card.ID] == 0 {
			report.NoRewards = append(report.NoRewards, card)
		}
	}
	report.Duplicates = findDuplicates(cards)

	a.log.Info("audit complete",
		"total", report.TotalCards,
		"no_rewards", len(report.NoRewards),
		"duplicate_pairs", len(report.Duplicates))
	return report, nil
}

// findDuplicates pairs cards whose normalized names collide exactly or
// sit within the near-match threshold.
func findDuplicates(cards []store.CardSummary) []DuplicatePair {
	var pairs []DuplicatePair
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			left := NormalizeName(cards[i].Name, cards[i].Issuer)
			right := NormalizeName(cards[j].Name, cards[j].Issuer)
			if left == "" || right == "" {
				continue
			}
			if left == right {
				pairs = append(pairs, DuplicatePair{A: cards[i], B: cards[j], Similarity: 1.0})
				continue
			}
			sim := matchr.JaroWinkler(left, right, false)
			if sim >= nearMatchThreshold {
				pairs = append(pairs, DuplicatePair{A: cards[i], B: cards[j], Similarity: sim})
			}
		}
	}
	return pairs
}

var (
	trademarkRe  = regexp.MustCompile(`[®™*©]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)

	// noiseWords add no identity to a card name and hide duplicates
	// behind branding variations.
	noiseWords = []string{
		"card", "credit", "mastercard", "visa", "american express",
		"best", "perks of the", "perks of", "the", "for", "with", "from", ":",
	}
)

// NormalizeName aggressively normalizes an (issuer, name) pair for
// duplicate comparison.
func NormalizeName(name, issuer string) string {
	full := strings.ToLower(issuer + " " + name)
	full = trademarkRe.ReplaceAllString(full, "")
	full = multiSpaceRe.ReplaceAllString(full, " ")
	for _, word := range noiseWords {
		full = strings.ReplaceAll(full, word, "")
	}
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(full, " "))
}

// CleanupResult describes a cleanup pass.
type CleanupResult struct {
	// Candidates are the reward-less cards selected for deletion.
	Candidates []store.CardSummary
	// Deleted is how many were actually removed. Zero on a dry run.
	Deleted int
	// DryRun is true when the operator did not confirm.
	DryRun bool
}

// Cleanup deletes cards that have no category rewards. Without confirm
// it only reports what would be deleted; nothing is removed unless the
// operator explicitly confirmed.
func (a *Auditor) Cleanup(ctx context.Context, confirm bool) (*CleanupResult, error) {
	report, err := a.Run(ctx)
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{
		Candidates: report.NoRewards,
		DryRun:     !confirm,
	}
	if !confirm {
		return result, nil
	}

	for _, card := range report.NoRewards {
		if err := a.repo.DeleteCard(ctx, card.ID); err != nil {
			a.log.Error("delete failed", "card_key", card.CardKey, "error", err)
			continue
		}
		a.log.Info("deleted card without rewards", "card_key", card.CardKey, "name", card.Name)
		result.Deleted++
	}
	return result, nil
}
