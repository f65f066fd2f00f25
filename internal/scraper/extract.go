package scraper

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/cardcrawl/internal/domain"
)

// cardHeadings are the elements considered card-name candidates inside a
// listing fragment.
const cardHeadings = "h2, h3, h4"

var (
	annualFeeRe = regexp.MustCompile(`(?i)(annual fee|yearly fee)[^$\d]*(\$?[\d,]+(?:\.\d{2})?|no annual fee|free)`)
	rateHintRe  = regexp.MustCompile(`(?i)[\d.]+\s*[%x]`)
)

// Extractor locates card-like fragments in comparison-site HTML and emits
// candidate records. Extraction is best effort: a fragment that cannot be
// parsed is reported and skipped, never fatal.
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a fetched page and returns zero or more candidates plus
// per-fragment parse errors.
func (e *Extractor) Extract(pageURL string, body []byte) ([]domain.Candidate, []error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, []error{&domain.ParseError{URL: pageURL, Reason: "invalid html: " + err.Error()}}
	}

	var (
		candidates []domain.Candidate
		errs       []error
		seen       = map[string]bool{}
	)

	doc.Find(cardHeadings).Each(func(_ int, heading *goquery.Selection) {
		name := strings.TrimSpace(heading.Text())
		if !looksLikeCardName(name) {
			return
		}

		fragment := fragmentText(heading)
		cand, parseErr := e.parseFragment(pageURL, name, fragment)
		if parseErr != nil {
			errs = append(errs, parseErr)
			return
		}
		if seen[cand.CardKey] {
			return
		}
		seen[cand.CardKey] = true
		candidates = append(candidates, cand)
	})

	return candidates, errs
}

// parseFragment builds a candidate from a card heading and the text of
// its surrounding fragment.
func (e *Extractor) parseFragment(pageURL, name, fragment string) (domain.Candidate, error) {
	issuer := ExtractIssuer(name)
	program := ExtractRewardProgram(name)
	currency := DetermineRewardCurrency(program, name)

	cand := domain.Candidate{
		CardKey:        domain.DeriveCardKey(name, issuer),
		Name:           name,
		Issuer:         issuer,
		RewardProgram:  program,
		RewardCurrency: currency,
		SourceURL:      pageURL,
		Confidence:     0.3,
	}
	if cand.CardKey == "" {
		return domain.Candidate{}, &domain.ParseError{URL: pageURL, Reason: "card name yields empty key: " + name}
	}

	valuation := EstimatePointValue(currency, program)
	cand.PointValuation = &valuation

	if m := annualFeeRe.FindString(fragment); m != "" {
		fee := ParseAnnualFee(m)
		cand.AnnualFee = &fee
		cand.Confidence += 0.2
	}
	if m := rateHintRe.FindString(fragment); m != "" {
		rate, unit := ParseRewardRate(m)
		cand.BaseRewardRate = &rate
		cand.BaseRewardUnit = unit
		cand.Confidence += 0.2
	}
	if rewards := ExtractCategoryRewards(fragment); len(rewards) > 0 {
		cand.CategoryRewards = rewards
		cand.Confidence += 0.1
	}
	if issuer != "Unknown" {
		cand.Confidence += 0.2
	}

	return cand, nil
}

// looksLikeCardName filters headings down to probable card names: they
// must mention a card or a known issuer and stay short enough to be a
// product name rather than a paragraph.
func looksLikeCardName(name string) bool {
	if name == "" || len(name) > 120 {
		return false
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "card") {
		return true
	}
	return ExtractIssuer(name) != "Unknown"
}

// fragmentText returns the text of the heading's enclosing fragment,
// preferring the nearest ancestor that carries fee or rate mentions.
func fragmentText(heading *goquery.Selection) string {
	sel := heading
	for range 3 {
		parent := sel.Parent()
		if parent.Length() == 0 {
			break
		}
		sel = parent
		text := sel.Text()
		if annualFeeRe.MatchString(text) || rateHintRe.MatchString(text) {
			return text
		}
	}
	return sel.Text()
}
