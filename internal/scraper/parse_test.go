package scraper_test

import (
	"testing"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/scraper"
)

func TestParseAnnualFee(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want float64
	}{
		{"$139", 139},
		{"Annual fee: $120.00", 120},
		{"$1,299", 1299},
		{"No annual fee", 0},
		{"free", 0},
		{"$0", 0},
		{"", 0},
		{"call us", 0},
	}

	for _, tc := range cases {
		if got := scraper.ParseAnnualFee(tc.text); got != tc.want {
			t.Errorf("ParseAnnualFee(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseRewardRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text     string
		wantRate float64
		wantUnit domain.RewardUnit
	}{
		{"5%", 5, domain.UnitPercent},
		{"5x", 5, domain.UnitMultiplier},
		{"1.5x points", 1.5, domain.UnitMultiplier},
		{"2.5 % cash back", 2.5, domain.UnitPercent},
		{"3", 3, domain.UnitPercent},
		{"", 1, domain.UnitPercent},
		{"lots of rewards", 1, domain.UnitPercent},
	}

	for _, tc := range cases {
		rate, unit := scraper.ParseRewardRate(tc.text)
		if rate != tc.wantRate || unit != tc.wantUnit {
			t.Errorf("ParseRewardRate(%q) = (%v, %s), want (%v, %s)",
				tc.text, rate, unit, tc.wantRate, tc.wantUnit)
		}
	}
}

func TestMapCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want domain.SpendingCategory
	}{
		{"Groceries", domain.CategoryGroceries},
		{"supermarket purchases", domain.CategoryGroceries},
		{"Restaurants & bars", domain.CategoryDining},
		{"gas stations", domain.CategoryGas},
		{"hotels and flights", domain.CategoryTravel},
		{"streaming subscriptions", domain.CategoryEntertainment},
		{"pharmacy", domain.CategoryDrugstores},
		{"hardware stores", domain.CategoryHomeImprovement},
		{"recurring bills", domain.CategoryOther},
	}

	for _, tc := range cases {
		if got := scraper.MapCategory(tc.text); got != tc.want {
			t.Errorf("MapCategory(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestExtractIssuer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"TD Aeroplan Visa Infinite", "TD"},
		{"American Express Cobalt Card", "American Express"},
		{"Scotiabank Gold American Express", "Scotiabank"},
		{"Tangerine Money-Back Credit Card", "Tangerine"},
		{"Mystery Rewards Card", "Unknown"},
	}

	for _, tc := range cases {
		if got := scraper.ExtractIssuer(tc.name); got != tc.want {
			t.Errorf("ExtractIssuer(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDetermineRewardCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		program string
		name    string
		want    domain.RewardCurrency
	}{
		{"Aeroplan", "TD Aeroplan Visa Infinite", domain.CurrencyAirlineMiles},
		{"Marriott Bonvoy", "Marriott Bonvoy American Express", domain.CurrencyHotelPoints},
		{"Cash Back", "Scotia Momentum Visa Infinite", domain.CurrencyCashback},
		{"Points", "BMO CashBack Mastercard", domain.CurrencyCashback},
		{"Scene+", "Scotiabank Gold American Express", domain.CurrencyPoints},
	}

	for _, tc := range cases {
		if got := scraper.DetermineRewardCurrency(tc.program, tc.name); got != tc.want {
			t.Errorf("DetermineRewardCurrency(%q, %q) = %s, want %s", tc.program, tc.name, got, tc.want)
		}
	}
}

func TestExtractCategoryRewards(t *testing.T) {
	t.Parallel()

	rewards := scraper.ExtractCategoryRewards(
		"Earn 4% cash back on groceries and 2% on gas. 5x points on dining. Annual fee: $120.")

	if len(rewards) != 3 {
		t.Fatalf("expected 3 rewards, got %d: %+v", len(rewards), rewards)
	}

	want := map[domain.SpendingCategory]struct {
		multiplier float64
		unit       domain.RewardUnit
	}{
		domain.CategoryGroceries: {4, domain.UnitPercent},
		domain.CategoryGas:       {2, domain.UnitPercent},
		domain.CategoryDining:    {5, domain.UnitMultiplier},
	}
	for _, cr := range rewards {
		w, ok := want[cr.Category]
		if !ok {
			t.Errorf("unexpected category %s", cr.Category)
			continue
		}
		if cr.Multiplier != w.multiplier || cr.RewardUnit != w.unit {
			t.Errorf("category %s: got (%v, %s), want (%v, %s)",
				cr.Category, cr.Multiplier, cr.RewardUnit, w.multiplier, w.unit)
		}
	}
}

func TestExtractCategoryRewardsSkipsUnknownCategories(t *testing.T) {
	t.Parallel()

	if rewards := scraper.ExtractCategoryRewards("1.5% cash back on everything"); len(rewards) != 0 {
		t.Errorf("expected no rewards, got %+v", rewards)
	}
	if rewards := scraper.ExtractCategoryRewards("low interest and no fees"); len(rewards) != 0 {
		t.Errorf("expected no rewards, got %+v", rewards)
	}
}

func TestExtractCategoryRewardsFirstMentionWins(t *testing.T) {
	t.Parallel()

	rewards := scraper.ExtractCategoryRewards("3% on groceries, plus 1% on grocery delivery")
	if len(rewards) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(rewards))
	}
	if rewards[0].Multiplier != 3 {
		t.Errorf("expected first grocery rate to win, got %v", rewards[0].Multiplier)
	}
}

func TestEstimatePointValue(t *testing.T) {
	t.Parallel()

	if got := scraper.EstimatePointValue(domain.CurrencyCashback, "Cash Back"); got != 1.0 {
		t.Errorf("cashback valuation = %v, want 1.0", got)
	}
	if got := scraper.EstimatePointValue(domain.CurrencyAirlineMiles, "Aeroplan"); got != 1.8 {
		t.Errorf("aeroplan valuation = %v, want 1.8", got)
	}
	if got := scraper.EstimatePointValue(domain.CurrencyPoints, "TD Rewards"); got != 0.5 {
		t.Errorf("td rewards valuation = %v, want 0.5", got)
	}
}
