// Package domain defines the core data model for credit-card collection.
package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// RewardCurrency identifies what a card earns.
type RewardCurrency string

const (
	CurrencyCashback     RewardCurrency = "cashback"
	CurrencyPoints       RewardCurrency = "points"
	CurrencyAirlineMiles RewardCurrency = "airline_miles"
	CurrencyHotelPoints  RewardCurrency = "hotel_points"
)

// Valid reports whether the currency is one of the known values.
func (c RewardCurrency) Valid() bool {
	switch c {
	case CurrencyCashback, CurrencyPoints, CurrencyAirlineMiles, CurrencyHotelPoints:
		return true
	}
	return false
}

// RewardUnit describes how a reward rate is expressed.
type RewardUnit string

const (
	UnitPercent    RewardUnit = "percent"
	UnitMultiplier RewardUnit = "multiplier"
)

// Valid reports whether the unit is one of the known values.
func (u RewardUnit) Valid() bool {
	return u == UnitPercent || u == UnitMultiplier
}

// SpendingCategory is a bonus-reward spending category.
type SpendingCategory string

const (
	CategoryGroceries       SpendingCategory = "groceries"
	CategoryDining          SpendingCategory = "dining"
	CategoryGas             SpendingCategory = "gas"
	CategoryTravel          SpendingCategory = "travel"
	CategoryOnlineShopping  SpendingCategory = "online_shopping"
	CategoryEntertainment   SpendingCategory = "entertainment"
	CategoryDrugstores      SpendingCategory = "drugstores"
	CategoryHomeImprovement SpendingCategory = "home_improvement"
	CategoryOther           SpendingCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (s SpendingCategory) Valid() bool {
	switch s {
	case CategoryGroceries, CategoryDining, CategoryGas, CategoryTravel,
		CategoryOnlineShopping, CategoryEntertainment, CategoryDrugstores,
		CategoryHomeImprovement, CategoryOther:
		return true
	}
	return false
}

// CategoryReward is a bonus rate for one spending category on a card.
type CategoryReward struct {
	Category         SpendingCategory `json:"category"`
	Multiplier       float64          `json:"multiplier"`
	RewardUnit       RewardUnit       `json:"reward_unit"`
	Description      string           `json:"description"`
	DescriptionFr    *string          `json:"description_fr,omitempty"`
	HasSpendLimit    bool             `json:"has_spend_limit"`
	SpendLimit       *float64         `json:"spend_limit,omitempty"`
	SpendLimitPeriod *string          `json:"spend_limit_period,omitempty"`
}

// SignupBonus is a one-time welcome offer tied to a spend requirement.
type SignupBonus struct {
	BonusAmount      int            `json:"bonus_amount"`
	BonusCurrency    RewardCurrency `json:"bonus_currency"`
	SpendRequirement float64        `json:"spend_requirement"`
	TimeframeDays    int            `json:"timeframe_days"`
	ValidUntil       *string        `json:"valid_until,omitempty"`
}

// Card is a single credit-card product offered by an issuer.
type Card struct {
	CardKey         string           `json:"card_key"`
	Name            string           `json:"name"`
	NameFr          *string          `json:"name_fr,omitempty"`
	Issuer          string           `json:"issuer"`
	RewardProgram   string           `json:"reward_program"`
	RewardCurrency  RewardCurrency   `json:"reward_currency"`
	PointValuation  float64          `json:"point_valuation"`
	AnnualFee       float64          `json:"annual_fee"`
	BaseRewardRate  float64          `json:"base_reward_rate"`
	BaseRewardUnit  RewardUnit       `json:"base_reward_unit"`
	ImageURL        *string          `json:"image_url,omitempty"`
	ApplyURL        *string          `json:"apply_url,omitempty"`
	CategoryRewards []CategoryReward `json:"category_rewards,omitempty"`
	SignupBonus     *SignupBonus     `json:"signup_bonus,omitempty"`
}

// Validate checks that all required card fields are populated and enums are
// valid. Cards must pass validation before entering the uploader.
func (c *Card) Validate() error {
	if c.CardKey == "" {
		return errors.New("card_key must be specified")
	}
	if c.Name == "" {
		return fmt.Errorf("card %s: name must be specified", c.CardKey)
	}
	if c.Issuer == "" {
		return fmt.Errorf("card %s: issuer must be specified", c.CardKey)
	}
	if c.RewardProgram == "" {
		return fmt.Errorf("card %s: reward_program must be specified", c.CardKey)
	}
	if !c.RewardCurrency.Valid() {
		return fmt.Errorf("card %s: invalid reward_currency: %q", c.CardKey, c.RewardCurrency)
	}
	if c.PointValuation <= 0 {
		return fmt.Errorf("card %s: point_valuation must be positive", c.CardKey)
	}
	if c.AnnualFee < 0 {
		return fmt.Errorf("card %s: annual_fee must not be negative", c.CardKey)
	}
	if c.BaseRewardRate <= 0 {
		return fmt.Errorf("card %s: base_reward_rate must be positive", c.CardKey)
	}
	if !c.BaseRewardUnit.Valid() {
		return fmt.Errorf("card %s: invalid base_reward_unit: %q", c.CardKey, c.BaseRewardUnit)
	}
	for i := range c.CategoryRewards {
		cr := &c.CategoryRewards[i]
		if !cr.Category.Valid() {
			return fmt.Errorf("card %s: invalid category: %q", c.CardKey, cr.Category)
		}
		if cr.Multiplier <= 0 {
			return fmt.Errorf("card %s: category %s: multiplier must be positive", c.CardKey, cr.Category)
		}
		if !cr.RewardUnit.Valid() {
			return fmt.Errorf("card %s: category %s: invalid reward_unit: %q", c.CardKey, cr.Category, cr.RewardUnit)
		}
	}
	if sb := c.SignupBonus; sb != nil {
		if sb.BonusAmount <= 0 {
			return fmt.Errorf("card %s: signup bonus amount must be positive", c.CardKey)
		}
		if !sb.BonusCurrency.Valid() {
			return fmt.Errorf("card %s: invalid bonus_currency: %q", c.CardKey, sb.BonusCurrency)
		}
	}
	return nil
}

var (
	keyStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	keySpaceRe    = regexp.MustCompile(`\s+`)
	keyCollapseRe = regexp.MustCompile(`-+`)
)

// DeriveCardKey generates a unique card key from issuer and name:
// lowercased, non-alphanumerics stripped, whitespace hyphenated.
func DeriveCardKey(name, issuer string) string {
	key := strings.ToLower(issuer + "-" + name)
	key = keyStripRe.ReplaceAllString(key, "")
	key = keySpaceRe.ReplaceAllString(key, "-")
	key = keyCollapseRe.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}
