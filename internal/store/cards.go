package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
)

// Table names in the remote store.
const (
	tableCards           = "cards"
	tableCategoryRewards = "category_rewards"
	tableSignupBonuses   = "signup_bonuses"
)

// cardRow mirrors the cards table.
type cardRow struct {
	ID             string   `json:"id,omitempty"`
	CardKey        string   `json:"card_key"`
	Name           string   `json:"name"`
	NameFr         *string  `json:"name_fr,omitempty"`
	Issuer         string   `json:"issuer"`
	RewardProgram  string   `json:"reward_program"`
	RewardCurrency string   `json:"reward_currency"`
	PointValuation float64  `json:"point_valuation"`
	AnnualFee      float64  `json:"annual_fee"`
	BaseRewardRate float64  `json:"base_reward_rate"`
	BaseRewardUnit string   `json:"base_reward_unit"`
	ImageURL       *string  `json:"image_url,omitempty"`
	ApplyURL       *string  `json:"apply_url,omitempty"`
	IsActive       bool     `json:"is_active"`
	UpdatedAt      string   `json:"updated_at"`
}

// categoryRewardRow mirrors the category_rewards table.
type categoryRewardRow struct {
	CardID           string   `json:"card_id"`
	Category         string   `json:"category"`
	Multiplier       float64  `json:"multiplier"`
	RewardUnit       string   `json:"reward_unit"`
	Description      string   `json:"description"`
	DescriptionFr    *string  `json:"description_fr,omitempty"`
	HasSpendLimit    bool     `json:"has_spend_limit"`
	SpendLimit       *float64 `json:"spend_limit,omitempty"`
	SpendLimitPeriod *string  `json:"spend_limit_period,omitempty"`
}

// signupBonusRow mirrors the signup_bonuses table.
type signupBonusRow struct {
	CardID           string  `json:"card_id"`
	BonusAmount      int     `json:"bonus_amount"`
	BonusCurrency    string  `json:"bonus_currency"`
	SpendRequirement float64 `json:"spend_requirement"`
	TimeframeDays    int     `json:"timeframe_days"`
	ValidUntil       *string `json:"valid_until,omitempty"`
	IsActive         bool    `json:"is_active"`
}

// CardSummary is the slim projection used by the duplicate auditor.
type CardSummary struct {
	ID      string `json:"id"`
	CardKey string `json:"card_key"`
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
}

// CardRepository handles card writes and the auditor's read paths.
type CardRepository struct {
	client *Client
	log    logger.Interface
	now    func() time.Time
}

// NewCardRepository creates a new card repository.
func NewCardRepository(client *Client, log logger.Interface) *CardRepository {
	return &CardRepository{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// UpsertCard inserts the card or updates the existing row sharing its
// card_key. Returns the row id and whether a new row was created.
func (r *CardRepository) UpsertCard(ctx context.Context, card *domain.Card) (string, bool, error) {
	row := r.toCardRow(card)

	var existing []struct {
		ID string `json:"id"`
	}
	query := url.Values{}
	query.Set("select", "id")
	query.Set("card_key", eq(card.CardKey))
	if err := r.client.Select(ctx, tableCards, query, &existing); err != nil {
		return "", false, err
	}

	if len(existing) > 0 {
		id := existing[0].ID
		updateQuery := url.Values{}
		updateQuery.Set("id", eq(id))
		if err := r.client.Update(ctx, tableCards, updateQuery, row); err != nil {
			return "", false, err
		}
		return id, false, nil
	}

	row.ID = uuid.New().String()
	var created []cardRow
	if err := r.client.Insert(ctx, tableCards, row, &created); err != nil {
		return "", false, err
	}
	return row.ID, true, nil
}

// ReplaceCategoryRewards replaces all category rewards for a card with
// the given set, keeping at most one row per (card, category).
func (r *CardRepository) ReplaceCategoryRewards(ctx context.Context, cardID string, rewards []domain.CategoryReward) error {
	query := url.Values{}
	query.Set("card_id", eq(cardID))
	if err := r.client.Delete(ctx, tableCategoryRewards, query); err != nil {
		return err
	}
	if len(rewards) == 0 {
		return nil
	}

	rows := make([]categoryRewardRow, 0, len(rewards))
	for _, cr := range rewards {
		rows = append(rows, categoryRewardRow{
			CardID:           cardID,
			Category:         string(cr.Category),
			Multiplier:       cr.Multiplier,
			RewardUnit:       string(cr.RewardUnit),
			Description:      cr.Description,
			DescriptionFr:    cr.DescriptionFr,
			HasSpendLimit:    cr.HasSpendLimit,
			SpendLimit:       cr.SpendLimit,
			SpendLimitPeriod: cr.SpendLimitPeriod,
		})
	}
	return r.client.Insert(ctx, tableCategoryRewards, rows, nil)
}

// ReplaceSignupBonus replaces the card's signup bonus (zero or one per
// card). A nil bonus clears any stored row.
func (r *CardRepository) ReplaceSignupBonus(ctx context.Context, cardID string, bonus *domain.SignupBonus) error {
	query := url.Values{}
	query.Set("card_id", eq(cardID))
	if err := r.client.Delete(ctx, tableSignupBonuses, query); err != nil {
		return err
	}
	if bonus == nil {
		return nil
	}

	row := signupBonusRow{
		CardID:           cardID,
		BonusAmount:      bonus.BonusAmount,
		BonusCurrency:    string(bonus.BonusCurrency),
		SpendRequirement: bonus.SpendRequirement,
		TimeframeDays:    bonus.TimeframeDays,
		ValidUntil:       bonus.ValidUntil,
		IsActive:         true,
	}
	return r.client.Insert(ctx, tableSignupBonuses, row, nil)
}

// ListCards returns every card's identity projection.
func (r *CardRepository) ListCards(ctx context.Context) ([]CardSummary, error) {
	var cards []CardSummary
	query := url.Values{}
	query.Set("select", "id,card_key,name,issuer")
	if err := r.client.Select(ctx, tableCards, query, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// CardIDsWithRewards returns the card ids that have at least one
// category reward row, mapped to their reward counts.
func (r *CardRepository) CardIDsWithRewards(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		CardID string `json:"card_id"`
	}
	query := url.Values{}
	query.Set("select", "card_id")
	if err := r.client.Select(ctx, tableCategoryRewards, query, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CardID]++
	}
	return counts, nil
}

// DeleteCard removes a card row by id. Child rows are expected to be
// absent (the cleanup path only deletes reward-less cards) or handled by
// the store's cascade rules.
func (r *CardRepository) DeleteCard(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", eq(id))
	return r.client.Delete(ctx, tableCards, query)
}

func (r *CardRepository) toCardRow(card *domain.Card) *cardRow {
	return &cardRow{
		CardKey:        card.CardKey,
		Name:           card.Name,
		NameFr:         card.NameFr,
		Issuer:         card.Issuer,
		RewardProgram:  card.RewardProgram,
		RewardCurrency: string(card.RewardCurrency),
		PointValuation: card.PointValuation,
		AnnualFee:      card.AnnualFee,
		BaseRewardRate: card.BaseRewardRate,
		BaseRewardUnit: string(card.BaseRewardUnit),
		ImageURL:       card.ImageURL,
		ApplyURL:       card.ApplyURL,
		IsActive:       true,
		UpdatedAt:      r.now().UTC().Format(time.RFC3339),
	}
}

// UploadResults summarizes a best-effort batch upload.
type UploadResults struct {
	CardsInserted   int
	CardsUpdated    int
	CategoryRewards int
	SignupBonuses   int
	Errors          []*domain.UploadError
}

// Upload upserts every card with its children. A failed card is recorded
// and skipped; remaining cards continue. Re-running with identical input
// performs updates only and creates no duplicate rows.
func (r *CardRepository) Upload(ctx context.Context, cards []domain.Card) *UploadResults {
	results := &UploadResults{}

	for i := range cards {
		card := &cards[i]
		if err := r.uploadOne(ctx, card, results); err != nil {
			r.log.Error("card upload failed", "card_key", card.CardKey, "error", err)
			results.Errors = append(results.Errors, &domain.UploadError{CardKey: card.CardKey, Err: err})
		}
	}

	return results
}

func (r *CardRepository) uploadOne(ctx context.Context, card *domain.Card, results *UploadResults) error {
	cardID, inserted, err := r.UpsertCard(ctx, card)
	if err != nil {
		return err
	}
	if inserted {
		results.CardsInserted++
	} else {
		results.CardsUpdated++
	}

	if err := r.ReplaceCategoryRewards(ctx, cardID, card.CategoryRewards); err != nil {
		return fmt.Errorf("category rewards: %w", err)
	}
	results.CategoryRewards += len(card.CategoryRewards)

	if err := r.ReplaceSignupBonus(ctx, cardID, card.SignupBonus); err != nil {
		return fmt.Errorf("signup bonus: %w", err)
	}
	if card.SignupBonus != nil {
		results.SignupBonuses++
	}

	r.log.Debug("card uploaded", "card_key", card.CardKey, "inserted", inserted)
	return nil
}
