package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/report"
)

func TestAddClassifiesByTaxonomy(t *testing.T) {
	t.Parallel()

	r := report.New()
	r.AddAll([]error{
		&domain.FetchError{URL: "https://example.com", StatusCode: 503},
		&domain.ParseError{URL: "https://example.com", Reason: "no card headings"},
		&domain.ValidationMismatch{CardKey: "amex-cobalt", Field: "annual_fee", Scraped: "155.88", Curated: "156"},
		&domain.UploadError{CardKey: "amex-cobalt", Err: errors.New("store responded 500")},
		errors.New("something else"),
	})

	assert.Len(t, r.FetchErrors, 1)
	assert.Len(t, r.ParseErrors, 1)
	assert.Len(t, r.Mismatches, 1)
	assert.Len(t, r.UploadErrors, 1)
	assert.Len(t, r.Other, 1)
	assert.Equal(t, 5, r.Total())
}

func TestAddUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	r := report.New()
	wrapped := fmt.Errorf("source failed: %w", &domain.FetchError{URL: "https://example.com"})
	r.Add(wrapped)

	assert.Len(t, r.FetchErrors, 1)
	assert.Empty(t, r.Other)
}

func TestAddIgnoresNil(t *testing.T) {
	t.Parallel()

	r := report.New()
	r.Add(nil)
	assert.Zero(t, r.Total())
}

func TestLogDoesNotPanicOnEmptyAndFullReports(t *testing.T) {
	t.Parallel()

	empty := report.New()
	empty.Log(logger.NewNoOp())

	full := report.New()
	full.Add(&domain.FetchError{URL: "https://example.com", Err: errors.New("timeout")})
	full.Add(&domain.UploadError{CardKey: "amex-cobalt", Err: errors.New("boom")})
	full.Log(logger.NewNoOp())
}
