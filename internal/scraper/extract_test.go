package scraper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/scraper"
)

const comparisonPageHTML = `<!DOCTYPE html>
<html>
<body>
	<h1>Best credit cards in Canada</h1>
	<div class="card-listing">
		<h2>TD Cash Back Visa Infinite Card</h2>
		<p>Earn 3% cash back on groceries. Annual fee: $139.</p>
	</div>
	<div class="card-listing">
		<h3>American Express Cobalt Card</h3>
		<p>Earn 5x points on eats and drinks. Annual fee of $155.88.</p>
	</div>
	<div class="card-listing">
		<h3>Mystery Rewards Card</h3>
		<p>No annual fee.</p>
	</div>
	<h2>How we rank these offers</h2>
	<p>Our methodology considers fees, rates and perks.</p>
</body>
</html>`

const duplicateHeadingsHTML = `<html><body>
	<h2>BMO CashBack World Elite Mastercard</h2>
	<p>5% cash back on groceries, $120 annual fee.</p>
	<h2>BMO CashBack World Elite Mastercard</h2>
	<p>Repeated listing of the same card.</p>
</body></html>`

func TestExtract(t *testing.T) {
	t.Parallel()

	ex := scraper.NewExtractor()
	candidates, errs := ex.Extract("https://example.com/best-cards", []byte(comparisonPageHTML))
	assert.Empty(t, errs)
	require.Len(t, candidates, 3)

	byKey := map[string]int{}
	for i, c := range candidates {
		byKey[c.CardKey] = i
	}

	td := candidates[byKey["td-td-cash-back-visa-infinite-card"]]
	assert.Equal(t, "TD", td.Issuer)
	require.NotNil(t, td.AnnualFee)
	assert.Equal(t, 139.0, *td.AnnualFee)
	require.NotNil(t, td.BaseRewardRate)
	assert.Equal(t, 3.0, *td.BaseRewardRate)
	require.Len(t, td.CategoryRewards, 1)
	assert.Equal(t, domain.CategoryGroceries, td.CategoryRewards[0].Category)
	assert.Equal(t, 3.0, td.CategoryRewards[0].Multiplier)
	assert.Equal(t, domain.UnitPercent, td.CategoryRewards[0].RewardUnit)
	assert.Equal(t, "https://example.com/best-cards", td.SourceURL)
	assert.InDelta(t, 1.0, td.Confidence, 0.001)

	cobalt := candidates[byKey["american-express-american-express-cobalt-card"]]
	assert.Equal(t, "American Express", cobalt.Issuer)
	require.NotNil(t, cobalt.AnnualFee)
	assert.Equal(t, 155.88, *cobalt.AnnualFee)

	// Unknown issuer still yields a candidate, just with lower confidence.
	mystery := candidates[byKey["unknown-mystery-rewards-card"]]
	assert.Equal(t, "Unknown", mystery.Issuer)
	assert.Less(t, mystery.Confidence, td.Confidence)
}

func TestExtractSkipsNonCardHeadings(t *testing.T) {
	t.Parallel()

	ex := scraper.NewExtractor()
	candidates, errs := ex.Extract("https://example.com", []byte(comparisonPageHTML))
	assert.Empty(t, errs)
	for _, c := range candidates {
		assert.NotContains(t, c.Name, "How we rank")
		assert.NotContains(t, c.Name, "Best credit cards")
	}
}

func TestExtractDeduplicatesPerPage(t *testing.T) {
	t.Parallel()

	ex := scraper.NewExtractor()
	candidates, errs := ex.Extract("https://example.com", []byte(duplicateHeadingsHTML))
	assert.Empty(t, errs)
	assert.Len(t, candidates, 1)
}
