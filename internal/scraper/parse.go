package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonesrussell/cardcrawl/internal/domain"
)

var (
	feeRe        = regexp.MustCompile(`\$?([\d,]+(?:\.\d{2})?)`)
	multiplierRe = regexp.MustCompile(`([\d.]+)\s*x`)
	percentRe    = regexp.MustCompile(`([\d.]+)\s*%`)
	numberRe     = regexp.MustCompile(`([\d.]+)`)

	// categoryRateRe ties a rate to the spending text that follows it, as
	// in "4% cash back on groceries" or "5x points on dining". The short
	// bounded gap tolerates filler like "cash back" or "MR points" without
	// letting a rate claim a category mentioned much later.
	categoryRateRe = regexp.MustCompile(`(?i)([\d.]+)\s*(x|%)[\w\s]{0,20}?\b(?:on|at)\s+([a-z]+(?:\s+[a-z]+)?)`)
)

// ParseAnnualFee extracts a dollar amount from text like "$139 annual fee"
// or "No annual fee". Returns 0 for free cards and unparseable text.
func ParseAnnualFee(text string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0
	}
	if strings.Contains(text, "no") || strings.Contains(text, "free") || text == "$0" {
		return 0
	}
	m := feeRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	fee, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return fee
}

// ParseRewardRate extracts a rate and unit from text like "5%" or "5x".
// Bare numbers are treated as percentages; unparseable text defaults to
// 1% flat.
func ParseRewardRate(text string) (float64, domain.RewardUnit) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 1.0, domain.UnitPercent
	}
	if m := multiplierRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, domain.UnitMultiplier
		}
	}
	if m := percentRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, domain.UnitPercent
		}
	}
	if m := numberRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, domain.UnitPercent
		}
	}
	return 1.0, domain.UnitPercent
}

// categoryKeywords maps keyword fragments to spending categories. Order
// does not matter; first containment match wins.
var categoryKeywords = []struct {
	keyword  string
	category domain.SpendingCategory
}{
	{"grocer", domain.CategoryGroceries},
	{"supermarket", domain.CategoryGroceries},
	{"food", domain.CategoryGroceries},
	{"dining", domain.CategoryDining},
	{"restaurant", domain.CategoryDining},
	{"gas", domain.CategoryGas},
	{"fuel", domain.CategoryGas},
	{"petrol", domain.CategoryGas},
	{"travel", domain.CategoryTravel},
	{"hotel", domain.CategoryTravel},
	{"flight", domain.CategoryTravel},
	{"airline", domain.CategoryTravel},
	{"online", domain.CategoryOnlineShopping},
	{"amazon", domain.CategoryOnlineShopping},
	{"entertainment", domain.CategoryEntertainment},
	{"movie", domain.CategoryEntertainment},
	{"streaming", domain.CategoryEntertainment},
	{"drugstore", domain.CategoryDrugstores},
	{"pharmacy", domain.CategoryDrugstores},
	{"drug", domain.CategoryDrugstores},
	{"home", domain.CategoryHomeImprovement},
	{"hardware", domain.CategoryHomeImprovement},
}

// MapCategory maps free-form category text to a spending category,
// falling back to "other".
func MapCategory(text string) domain.SpendingCategory {
	text = strings.ToLower(text)
	for _, kw := range categoryKeywords {
		if strings.Contains(text, kw.keyword) {
			return kw.category
		}
	}
	return domain.CategoryOther
}

// ExtractCategoryRewards finds category bonus rates in fragment text.
// Rates whose following text does not map to a known category are
// ignored; at most one reward per category, first mention wins.
func ExtractCategoryRewards(text string) []domain.CategoryReward {
	var out []domain.CategoryReward
	seen := map[domain.SpendingCategory]bool{}

	for _, m := range categoryRateRe.FindAllStringSubmatch(text, -1) {
		rate, err := strconv.ParseFloat(m[1], 64)
		if err != nil || rate <= 0 {
			continue
		}
		category := MapCategory(m[3])
		if category == domain.CategoryOther || seen[category] {
			continue
		}
		seen[category] = true

		unit, suffix := domain.UnitPercent, "%"
		if strings.EqualFold(m[2], "x") {
			unit, suffix = domain.UnitMultiplier, "x"
		}
		out = append(out, domain.CategoryReward{
			Category:    category,
			Multiplier:  rate,
			RewardUnit:  unit,
			Description: fmt.Sprintf("%g%s on %s", rate, suffix, category),
		})
	}
	return out
}

// issuerPatterns maps issuer names to substrings found in card names.
var issuerPatterns = []struct {
	issuer   string
	patterns []string
}{
	{"TD", []string{"td ", "td-"}},
	{"RBC", []string{"rbc ", "royal bank"}},
	{"BMO", []string{"bmo "}},
	{"CIBC", []string{"cibc "}},
	{"Scotiabank", []string{"scotiabank", "scotia "}},
	{"American Express", []string{"amex", "american express"}},
	{"MBNA", []string{"mbna "}},
	{"Capital One", []string{"capital one"}},
	{"Tangerine", []string{"tangerine"}},
	{"Simplii", []string{"simplii"}},
	{"PC Financial", []string{"pc ", "president"}},
	{"HSBC", []string{"hsbc"}},
	{"National Bank", []string{"national bank"}},
	{"Desjardins", []string{"desjardins"}},
	{"Rogers Bank", []string{"rogers"}},
	{"Neo Financial", []string{"neo "}},
	{"Canadian Tire", []string{"canadian tire", "triangle"}},
}

// ExtractIssuer guesses the issuer from a card name.
func ExtractIssuer(cardName string) string {
	name := strings.ToLower(cardName)
	for _, ip := range issuerPatterns {
		for _, p := range ip.patterns {
			if strings.Contains(name, p) {
				return ip.issuer
			}
		}
	}
	return "Unknown"
}

// programPatterns maps reward programs to substrings found in card names.
var programPatterns = []struct {
	program  string
	patterns []string
}{
	{"Aeroplan", []string{"aeroplan"}},
	{"Scene+", []string{"scene"}},
	{"Air Miles", []string{"air miles"}},
	{"Avion", []string{"avion"}},
	{"TD Rewards", []string{"td rewards", "td first class"}},
	{"BMO Rewards", []string{"bmo rewards", "eclipse"}},
	{"Aventura", []string{"aventura"}},
	{"Membership Rewards", []string{"membership rewards", "amex", "cobalt", "gold rewards", "platinum"}},
	{"Cash Back", []string{"cash back", "cashback", "cash-back"}},
	{"PC Optimum", []string{"pc optimum", "pc financial"}},
	{"Triangle Rewards", []string{"triangle"}},
	{"Marriott Bonvoy", []string{"marriott", "bonvoy"}},
	{"Hilton Honors", []string{"hilton"}},
	{"WestJet Rewards", []string{"westjet"}},
	{"MBNA Rewards", []string{"mbna"}},
	{"Odyssey", []string{"odyssey"}},
}

// ExtractRewardProgram guesses the reward program from a card name.
func ExtractRewardProgram(cardName string) string {
	name := strings.ToLower(cardName)
	for _, pp := range programPatterns {
		for _, p := range pp.patterns {
			if strings.Contains(name, p) {
				return pp.program
			}
		}
	}
	return "Points"
}

// DetermineRewardCurrency infers the reward currency from the program and
// card name.
func DetermineRewardCurrency(program, cardName string) domain.RewardCurrency {
	p := strings.ToLower(program)
	n := strings.ToLower(cardName)
	for _, s := range []string{"aeroplan", "air miles", "avion", "westjet"} {
		if strings.Contains(p, s) {
			return domain.CurrencyAirlineMiles
		}
	}
	for _, s := range []string{"marriott", "hilton", "bonvoy"} {
		if strings.Contains(p, s) {
			return domain.CurrencyHotelPoints
		}
	}
	for _, s := range []string{"cash"} {
		if strings.Contains(p, s) || strings.Contains(n, s) {
			return domain.CurrencyCashback
		}
	}
	return domain.CurrencyPoints
}

// EstimatePointValue estimates point value in CAD cents for a program.
// These are rough valuations; curated data overrides them.
func EstimatePointValue(currency domain.RewardCurrency, program string) float64 {
	p := strings.ToLower(program)
	switch {
	case currency == domain.CurrencyCashback:
		return 1.0
	case strings.Contains(p, "aeroplan"):
		return 1.8
	case strings.Contains(p, "membership rewards"), strings.Contains(p, "amex"):
		return 2.0
	case strings.Contains(p, "scene"):
		return 1.0
	case strings.Contains(p, "avion"):
		return 1.5
	case strings.Contains(p, "td rewards"):
		return 0.5
	case strings.Contains(p, "bmo rewards"):
		return 0.7
	case strings.Contains(p, "aventura"):
		return 1.0
	case currency == domain.CurrencyAirlineMiles:
		return 1.5
	case currency == domain.CurrencyHotelPoints:
		return 0.7
	}
	return 1.0
}
