// Package known holds the hand-curated Canadian credit-card dataset.
// Values here are manually verified and treated as ground truth over
// anything the scraper finds. Adding a card is purely data entry.
package known

import "github.com/jonesrussell/cardcrawl/internal/domain"

// Cards returns a copy of the curated dataset. Callers may mutate the
// returned slice freely; the dataset itself is immutable after init.
func Cards() []domain.Card {
	out := make([]domain.Card, len(cards))
	for i, c := range cards {
		out[i] = c
		out[i].CategoryRewards = append([]domain.CategoryReward(nil), c.CategoryRewards...)
		if c.SignupBonus != nil {
			sb := *c.SignupBonus
			out[i].SignupBonus = &sb
		}
	}
	return out
}

// ByKey returns the curated card for the given key, if present.
func ByKey(cardKey string) (domain.Card, bool) {
	for _, c := range Cards() {
		if c.CardKey == cardKey {
			return c, true
		}
	}
	return domain.Card{}, false
}

var cards = []domain.Card{
	// TD
	{
		CardKey:        "td-aeroplan-visa-infinite",
		Name:           "TD Aeroplan Visa Infinite",
		Issuer:         "TD",
		RewardProgram:  "Aeroplan",
		RewardCurrency: domain.CurrencyAirlineMiles,
		PointValuation: 1.8,
		AnnualFee:      139,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on travel"},
			{Category: domain.CategoryGas, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on gas"},
			{Category: domain.CategoryGroceries, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on groceries"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 20000, BonusCurrency: domain.CurrencyAirlineMiles, SpendRequirement: 1000, TimeframeDays: 90},
	},
	{
		CardKey:        "td-cash-back-visa-infinite",
		Name:           "TD Cash Back Visa Infinite",
		Issuer:         "TD",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      139,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 3.0, RewardUnit: domain.UnitPercent, Description: "3% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 3.0, RewardUnit: domain.UnitPercent, Description: "3% cash back on gas"},
			{Category: domain.CategoryDining, Multiplier: 3.0, RewardUnit: domain.UnitPercent, Description: "3% cash back on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 100, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 500, TimeframeDays: 90},
	},
	{
		CardKey:        "td-first-class-travel-visa-infinite",
		Name:           "TD First Class Travel Visa Infinite",
		Issuer:         "TD",
		RewardProgram:  "TD Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 0.5,
		AnnualFee:      139,
		BaseRewardRate: 3.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 9.0, RewardUnit: domain.UnitMultiplier, Description: "9x TD points on travel booked through Expedia for TD"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 100000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 1000, TimeframeDays: 90},
	},

	// CIBC
	{
		CardKey:        "cibc-dividend-visa-infinite",
		Name:           "CIBC Dividend Visa Infinite",
		Issuer:         "CIBC",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      120,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on gas"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 200, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 1000, TimeframeDays: 120},
	},
	{
		CardKey:        "cibc-dividend-visa",
		Name:           "CIBC Dividend Visa",
		Issuer:         "CIBC",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on gas"},
		},
	},
	{
		CardKey:        "cibc-aventura-visa-infinite",
		Name:           "CIBC Aventura Visa Infinite",
		Issuer:         "CIBC",
		RewardProgram:  "Aventura",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.0,
		AnnualFee:      139,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Aventura points on travel"},
			{Category: domain.CategoryGas, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aventura points on gas"},
			{Category: domain.CategoryGroceries, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aventura points on groceries"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 20000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 1000, TimeframeDays: 120},
	},
	{
		CardKey:        "cibc-aeroplan-visa-infinite",
		Name:           "CIBC Aeroplan Visa Infinite",
		Issuer:         "CIBC",
		RewardProgram:  "Aeroplan",
		RewardCurrency: domain.CurrencyAirlineMiles,
		PointValuation: 1.8,
		AnnualFee:      139,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on Air Canada"},
			{Category: domain.CategoryGas, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on gas"},
			{Category: domain.CategoryGroceries, Multiplier: 1.5, RewardUnit: domain.UnitMultiplier, Description: "1.5x Aeroplan points on groceries"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 40000, BonusCurrency: domain.CurrencyAirlineMiles, SpendRequirement: 3000, TimeframeDays: 120},
	},

	// Scotiabank
	{
		CardKey:        "scotiabank-gold-amex",
		Name:           "Scotiabank Gold American Express",
		Issuer:         "Scotiabank",
		RewardProgram:  "Scene+",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.0,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x Scene+ points on groceries"},
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x Scene+ points on dining"},
			{Category: domain.CategoryEntertainment, Multiplier: 3.0, RewardUnit: domain.UnitMultiplier, Description: "3x Scene+ points on entertainment"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 30000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 1000, TimeframeDays: 90},
	},
	{
		CardKey:        "scotiabank-momentum-visa-infinite",
		Name:           "Scotia Momentum Visa Infinite",
		Issuer:         "Scotiabank",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      120,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on groceries"},
			{Category: domain.CategoryDining, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on dining"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 350, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 2000, TimeframeDays: 90},
	},
	{
		CardKey:        "scotiabank-passport-visa-infinite",
		Name:           "Scotiabank Passport Visa Infinite",
		Issuer:         "Scotiabank",
		RewardProgram:  "Scene+",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.0,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Scene+ points on groceries"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Scene+ points on dining"},
			{Category: domain.CategoryEntertainment, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Scene+ points on entertainment"},
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Scene+ points on travel"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 35000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 2000, TimeframeDays: 90},
	},

	// American Express
	{
		CardKey:        "amex-cobalt",
		Name:           "American Express Cobalt Card",
		Issuer:         "American Express",
		RewardProgram:  "Membership Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 2.0,
		AnnualFee:      156,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x MR points on dining"},
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x MR points on groceries"},
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x MR points on travel"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x MR points on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 30000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 3000, TimeframeDays: 90},
	},
	{
		CardKey:        "amex-gold-rewards",
		Name:           "American Express Gold Rewards Card",
		Issuer:         "American Express",
		RewardProgram:  "Membership Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 2.0,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x MR points on travel"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x MR points on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 40000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 3000, TimeframeDays: 90},
	},
	{
		CardKey:        "amex-simply-cash-preferred",
		Name:           "SimplyCash Preferred Card from American Express",
		Issuer:         "American Express",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      99,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 400, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 3000, TimeframeDays: 90},
	},
	{
		CardKey:        "amex-simply-cash",
		Name:           "SimplyCash Card from American Express",
		Issuer:         "American Express",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 1.25,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 1.25, RewardUnit: domain.UnitPercent, Description: "1.25% cash back on all purchases"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 200, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 1500, TimeframeDays: 90},
	},
	{
		CardKey:        "amex-aeroplan-reserve",
		Name:           "American Express Aeroplan Reserve Card",
		Issuer:         "American Express",
		RewardProgram:  "Aeroplan",
		RewardCurrency: domain.CurrencyAirlineMiles,
		PointValuation: 1.8,
		AnnualFee:      599,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 3.0, RewardUnit: domain.UnitMultiplier, Description: "3x Aeroplan points on Air Canada"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Aeroplan points on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 80000, BonusCurrency: domain.CurrencyAirlineMiles, SpendRequirement: 6000, TimeframeDays: 180},
	},
	{
		CardKey:        "amex-platinum",
		Name:           "The Platinum Card from American Express",
		Issuer:         "American Express",
		RewardProgram:  "Membership Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 2.0,
		AnnualFee:      799,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 3.0, RewardUnit: domain.UnitMultiplier, Description: "3x MR points on travel booked through Amex Travel"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x MR points on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 80000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 8000, TimeframeDays: 90},
	},

	// RBC
	{
		CardKey:        "rbc-avion-visa-infinite",
		Name:           "RBC Avion Visa Infinite",
		Issuer:         "RBC",
		RewardProgram:  "Avion",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.5,
		AnnualFee:      120,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 1.0, RewardUnit: domain.UnitMultiplier, Description: "1x Avion points on all purchases"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 35000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 5000, TimeframeDays: 90},
	},
	{
		CardKey:        "rbc-cash-back-mastercard",
		Name:           "RBC Cash Back Mastercard",
		Issuer:         "RBC",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on groceries"},
		},
	},
	{
		CardKey:        "rbc-westjet-world-elite",
		Name:           "WestJet RBC World Elite Mastercard",
		Issuer:         "RBC",
		RewardProgram:  "WestJet Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.5,
		AnnualFee:      119,
		BaseRewardRate: 1.5,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x WestJet points on WestJet purchases"},
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x WestJet points on groceries"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x WestJet points on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 450, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 5000, TimeframeDays: 90},
	},

	// BMO
	{
		CardKey:        "bmo-cashback-mastercard",
		Name:           "BMO CashBack Mastercard",
		Issuer:         "BMO",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 3.0, RewardUnit: domain.UnitPercent, Description: "3% cash back on groceries"},
		},
	},
	{
		CardKey:        "bmo-eclipse-visa-infinite",
		Name:           "BMO Eclipse Visa Infinite",
		Issuer:         "BMO",
		RewardProgram:  "BMO Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 0.7,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x BMO points on groceries"},
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x BMO points on dining"},
			{Category: domain.CategoryTravel, Multiplier: 3.0, RewardUnit: domain.UnitMultiplier, Description: "3x BMO points on travel"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 50000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 3000, TimeframeDays: 90},
	},
	{
		CardKey:        "bmo-air-miles-world-elite",
		Name:           "BMO AIR MILES World Elite Mastercard",
		Issuer:         "BMO",
		RewardProgram:  "AIR MILES",
		RewardCurrency: domain.CurrencyAirlineMiles,
		PointValuation: 0.1,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2 AIR MILES per $12 on groceries"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 5000, BonusCurrency: domain.CurrencyAirlineMiles, SpendRequirement: 4500, TimeframeDays: 110},
	},
	{
		CardKey:        "bmo-cashback-world-elite",
		Name:           "BMO CashBack World Elite Mastercard",
		Issuer:         "BMO",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      120,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on gas"},
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 300, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 3000, TimeframeDays: 90},
	},

	// No-fee cards
	{
		CardKey:        "tangerine-money-back",
		Name:           "Tangerine Money-Back Credit Card",
		Issuer:         "Tangerine",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on groceries (selected category)"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on gas (selected category)"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on dining (selected category)"},
		},
	},
	{
		CardKey:        "simplii-cash-back-visa",
		Name:           "Simplii Financial Cash Back Visa",
		Issuer:         "Simplii",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryDining, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on dining"},
			{Category: domain.CategoryGroceries, Multiplier: 1.5, RewardUnit: domain.UnitPercent, Description: "1.5% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 1.5, RewardUnit: domain.UnitPercent, Description: "1.5% cash back on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 400, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 5000, TimeframeDays: 120},
	},
	{
		CardKey:        "rogers-world-elite-mastercard",
		Name:           "Rogers World Elite Mastercard",
		Issuer:         "Rogers Bank",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 1.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryOnlineShopping, Multiplier: 1.5, RewardUnit: domain.UnitPercent, Description: "1.5% cash back everywhere"},
		},
	},
	{
		CardKey:        "pc-financial-world-elite",
		Name:           "PC Financial World Elite Mastercard",
		Issuer:         "PC Financial",
		RewardProgram:  "PC Optimum",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 0.1,
		AnnualFee:      0,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 3.0, RewardUnit: domain.UnitMultiplier, Description: "3x PC Optimum points at Loblaws stores"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 20000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 0, TimeframeDays: 30},
	},
	{
		CardKey:        "triangle-world-elite",
		Name:           "Triangle World Elite Mastercard",
		Issuer:         "Canadian Tire",
		RewardProgram:  "Triangle Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 0.1,
		AnnualFee:      0,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGas, Multiplier: 4.0, RewardUnit: domain.UnitMultiplier, Description: "4x Triangle points at Canadian Tire Gas+"},
			{Category: domain.CategoryHomeImprovement, Multiplier: 4.0, RewardUnit: domain.UnitMultiplier, Description: "4x Triangle points at Canadian Tire"},
		},
	},

	// Neo Financial
	{
		CardKey:        "neo-world-elite-mastercard",
		Name:           "Neo World Elite Mastercard",
		Issuer:         "Neo Financial",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      125,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 3.0, RewardUnit: domain.UnitPercent, Description: "3% cash back on gas"},
		},
	},
	{
		CardKey:        "neo-mastercard",
		Name:           "Neo Mastercard",
		Issuer:         "Neo Financial",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      0,
		BaseRewardRate: 0.5,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 1.0, RewardUnit: domain.UnitPercent, Description: "1% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 1.0, RewardUnit: domain.UnitPercent, Description: "1% cash back on gas"},
		},
	},

	// MBNA
	{
		CardKey:        "mbna-rewards-world-elite",
		Name:           "MBNA Rewards World Elite Mastercard",
		Issuer:         "MBNA",
		RewardProgram:  "MBNA Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.0,
		AnnualFee:      120,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x MBNA points on groceries"},
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitMultiplier, Description: "5x MBNA points on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 50000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 5000, TimeframeDays: 90},
	},

	// National Bank
	{
		CardKey:        "national-bank-world-elite",
		Name:           "National Bank World Elite Mastercard",
		Issuer:         "National Bank",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on groceries"},
			{Category: domain.CategoryDining, Multiplier: 5.0, RewardUnit: domain.UnitPercent, Description: "5% cash back on dining"},
			{Category: domain.CategoryGas, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on gas"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 400, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 3000, TimeframeDays: 90},
	},

	// Desjardins
	{
		CardKey:        "desjardins-odyssey-world-elite",
		Name:           "Desjardins Odyssey World Elite Mastercard",
		Issuer:         "Desjardins",
		RewardProgram:  "Odyssey",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 1.0,
		AnnualFee:      150,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryTravel, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Odyssey points on travel"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitMultiplier, Description: "2x Odyssey points on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 30000, BonusCurrency: domain.CurrencyPoints, SpendRequirement: 2000, TimeframeDays: 90},
	},
	{
		CardKey:        "desjardins-cash-back-world-elite",
		Name:           "Desjardins Cash Back World Elite Mastercard",
		Issuer:         "Desjardins",
		RewardProgram:  "Cash Back",
		RewardCurrency: domain.CurrencyCashback,
		PointValuation: 1.0,
		AnnualFee:      110,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitPercent,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryGroceries, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on groceries"},
			{Category: domain.CategoryGas, Multiplier: 4.0, RewardUnit: domain.UnitPercent, Description: "4% cash back on gas"},
			{Category: domain.CategoryDining, Multiplier: 2.0, RewardUnit: domain.UnitPercent, Description: "2% cash back on dining"},
		},
		SignupBonus: &domain.SignupBonus{BonusAmount: 200, BonusCurrency: domain.CurrencyCashback, SpendRequirement: 1500, TimeframeDays: 90},
	},
}
