// Package normalizer reconciles candidate card records against the
// curated dataset and deduplicates them by card key.
package normalizer

import (
	"fmt"
	"strconv"

	"github.com/jonesrussell/cardcrawl/internal/domain"
)

// Result is the output of a normalization pass.
type Result struct {
	// Cards is the deduplicated, validated set ready for upload.
	Cards []domain.Card
	// Mismatches are scraped fields that conflicted with curated truth.
	// The curated values won; these are reported, not fatal.
	Mismatches []*domain.ValidationMismatch
	// Invalid records failed validation and were dropped.
	Invalid []error
}

// Normalize derives missing keys, cross-checks candidates against the
// curated dataset (curated values win), and collapses records sharing a
// card key, preferring the most complete record. Pure function: no I/O.
func Normalize(candidates []domain.Candidate, curated []domain.Card) *Result {
	result := &Result{}

	curatedByKey := make(map[string]domain.Card, len(curated))
	for _, c := range curated {
		curatedByKey[c.CardKey] = c
	}

	// Group by key, preserving first-seen order for deterministic output.
	groups := map[string][]domain.Candidate{}
	var order []string
	for _, cand := range candidates {
		if cand.CardKey == "" {
			cand.CardKey = domain.DeriveCardKey(cand.Name, cand.Issuer)
		}
		if cand.CardKey == "" {
			result.Invalid = append(result.Invalid,
				fmt.Errorf("candidate from %s has no name or issuer to derive a key from", cand.SourceURL))
			continue
		}
		if _, ok := groups[cand.CardKey]; !ok {
			order = append(order, cand.CardKey)
		}
		groups[cand.CardKey] = append(groups[cand.CardKey], cand)
	}

	for _, key := range order {
		group := groups[key]

		if truth, ok := curatedByKey[key]; ok {
			for i := range group {
				result.Mismatches = append(result.Mismatches, crossCheck(&group[i], &truth)...)
			}
			card := mergeCurated(truth, group)
			result.Cards = append(result.Cards, card)
			continue
		}

		winner := pickWinner(group)
		card := winner.ToCard()
		if err := card.Validate(); err != nil {
			result.Invalid = append(result.Invalid, err)
			continue
		}
		result.Cards = append(result.Cards, card)
	}

	return result
}

// pickWinner selects the record to keep when several share a key:
// curated beats scraped, then the most complete record wins.
func pickWinner(group []domain.Candidate) domain.Candidate {
	winner := group[0]
	for _, cand := range group[1:] {
		if cand.Curated != winner.Curated {
			if cand.Curated {
				winner = cand
			}
			continue
		}
		if cand.Completeness() > winner.Completeness() {
			winner = cand
		}
	}
	return winner
}

// mergeCurated returns the curated card, filling only optional fields the
// curated dataset leaves empty from the best scraped record.
func mergeCurated(truth domain.Card, group []domain.Candidate) domain.Card {
	best := pickWinner(group)
	if truth.ImageURL == nil {
		truth.ImageURL = best.ImageURL
	}
	if truth.ApplyURL == nil {
		truth.ApplyURL = best.ApplyURL
	}
	return truth
}

// crossCheck compares a scraped candidate's populated fields against the
// curated card and reports every conflict. Curated candidates are their
// own truth and are skipped.
func crossCheck(cand *domain.Candidate, truth *domain.Card) []*domain.ValidationMismatch {
	if cand.Curated {
		return nil
	}

	var out []*domain.ValidationMismatch
	report := func(field, scraped, curated string) {
		out = append(out, &domain.ValidationMismatch{
			CardKey: truth.CardKey,
			Field:   field,
			Scraped: scraped,
			Curated: curated,
		})
	}

	if cand.AnnualFee != nil && *cand.AnnualFee != truth.AnnualFee {
		report("annual_fee", formatAmount(*cand.AnnualFee), formatAmount(truth.AnnualFee))
	}
	if cand.BaseRewardRate != nil && *cand.BaseRewardRate != truth.BaseRewardRate {
		report("base_reward_rate", formatAmount(*cand.BaseRewardRate), formatAmount(truth.BaseRewardRate))
	}
	if cand.BaseRewardUnit != "" && cand.BaseRewardUnit != truth.BaseRewardUnit {
		report("base_reward_unit", string(cand.BaseRewardUnit), string(truth.BaseRewardUnit))
	}
	if cand.RewardCurrency != "" && cand.RewardCurrency != truth.RewardCurrency {
		report("reward_currency", string(cand.RewardCurrency), string(truth.RewardCurrency))
	}
	if cand.RewardProgram != "" && cand.RewardProgram != truth.RewardProgram {
		report("reward_program", cand.RewardProgram, truth.RewardProgram)
	}
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
