package domain

// Candidate is a card-shaped record emitted by the scraper before
// normalization. Optional scalar fields are pointers so that "absent" is
// distinguishable from a legitimate zero (a $0 annual fee is real data).
type Candidate struct {
	CardKey         string
	Name            string
	Issuer          string
	RewardProgram   string
	RewardCurrency  RewardCurrency
	PointValuation  *float64
	AnnualFee       *float64
	BaseRewardRate  *float64
	BaseRewardUnit  RewardUnit
	ImageURL        *string
	ApplyURL        *string
	CategoryRewards []CategoryReward
	SignupBonus     *SignupBonus

	// SourceURL is the page the candidate was extracted from. Empty for
	// curated records.
	SourceURL string
	// Confidence is a 0-1 estimate of extraction quality.
	Confidence float64
	// Curated marks records originating from the known-card dataset.
	Curated bool
}

// CandidateFromCard wraps a fully-populated card as a curated candidate.
func CandidateFromCard(c Card) Candidate {
	return Candidate{
		CardKey:         c.CardKey,
		Name:            c.Name,
		Issuer:          c.Issuer,
		RewardProgram:   c.RewardProgram,
		RewardCurrency:  c.RewardCurrency,
		PointValuation:  ptr(c.PointValuation),
		AnnualFee:       ptr(c.AnnualFee),
		BaseRewardRate:  ptr(c.BaseRewardRate),
		BaseRewardUnit:  c.BaseRewardUnit,
		ImageURL:        c.ImageURL,
		ApplyURL:        c.ApplyURL,
		CategoryRewards: c.CategoryRewards,
		SignupBonus:     c.SignupBonus,
		Confidence:      1.0,
		Curated:         true,
	}
}

// Completeness scores a candidate by how many fields carry data. Used to
// pick a winner when scraped records collide on the same key.
func (c *Candidate) Completeness() int {
	score := 0
	for _, s := range []string{c.Name, c.Issuer, c.RewardProgram, string(c.RewardCurrency), string(c.BaseRewardUnit)} {
		if s != "" {
			score++
		}
	}
	if c.PointValuation != nil {
		score++
	}
	if c.AnnualFee != nil {
		score++
	}
	if c.BaseRewardRate != nil {
		score++
	}
	if c.ImageURL != nil {
		score++
	}
	if c.ApplyURL != nil {
		score++
	}
	if c.SignupBonus != nil {
		score++
	}
	score += len(c.CategoryRewards)
	return score
}

// ToCard materializes the candidate as a Card, filling absent optional
// fields with the dataset defaults (1.0 base rate as percent, $0 fee,
// 1.0 point valuation).
func (c *Candidate) ToCard() Card {
	card := Card{
		CardKey:         c.CardKey,
		Name:            c.Name,
		Issuer:          c.Issuer,
		RewardProgram:   c.RewardProgram,
		RewardCurrency:  c.RewardCurrency,
		PointValuation:  1.0,
		AnnualFee:       0,
		BaseRewardRate:  1.0,
		BaseRewardUnit:  UnitPercent,
		ImageURL:        c.ImageURL,
		ApplyURL:        c.ApplyURL,
		CategoryRewards: c.CategoryRewards,
		SignupBonus:     c.SignupBonus,
	}
	if card.CardKey == "" {
		card.CardKey = DeriveCardKey(c.Name, c.Issuer)
	}
	if c.PointValuation != nil {
		card.PointValuation = *c.PointValuation
	}
	if c.AnnualFee != nil {
		card.AnnualFee = *c.AnnualFee
	}
	if c.BaseRewardRate != nil {
		card.BaseRewardRate = *c.BaseRewardRate
	}
	if c.BaseRewardUnit != "" {
		card.BaseRewardUnit = c.BaseRewardUnit
	}
	if card.RewardCurrency == "" {
		card.RewardCurrency = CurrencyPoints
	}
	return card
}

func ptr[T any](v T) *T {
	return &v
}
