// Package report aggregates per-record errors into an end-of-run
// summary. Only configuration errors are fatal; everything collected
// here is reported and the run continues.
package report

import (
	"errors"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
)

// Report collects the run's non-fatal errors by taxonomy.
type Report struct {
	FetchErrors  []*domain.FetchError
	ParseErrors  []*domain.ParseError
	Mismatches   []*domain.ValidationMismatch
	UploadErrors []*domain.UploadError
	Other        []error
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Add classifies an error into its taxonomy bucket.
func (r *Report) Add(err error) {
	if err == nil {
		return
	}

	var fetchErr *domain.FetchError
	var parseErr *domain.ParseError
	var mismatch *domain.ValidationMismatch
	var uploadErr *domain.UploadError

	switch {
	case errors.As(err, &fetchErr):
		r.FetchErrors = append(r.FetchErrors, fetchErr)
	case errors.As(err, &parseErr):
		r.ParseErrors = append(r.ParseErrors, parseErr)
	case errors.As(err, &mismatch):
		r.Mismatches = append(r.Mismatches, mismatch)
	case errors.As(err, &uploadErr):
		r.UploadErrors = append(r.UploadErrors, uploadErr)
	default:
		r.Other = append(r.Other, err)
	}
}

// AddAll classifies a batch of errors.
func (r *Report) AddAll(errs []error) {
	for _, err := range errs {
		r.Add(err)
	}
}

// Total returns the number of collected errors.
func (r *Report) Total() int {
	return len(r.FetchErrors) + len(r.ParseErrors) + len(r.Mismatches) +
		len(r.UploadErrors) + len(r.Other)
}

// Log writes the end-of-run summary, one line per collected error.
func (r *Report) Log(log logger.Interface) {
	if r.Total() == 0 {
		log.Info("run completed with no errors")
		return
	}

	log.Info("run completed with errors",
		"fetch", len(r.FetchErrors),
		"parse", len(r.ParseErrors),
		"mismatches", len(r.Mismatches),
		"upload", len(r.UploadErrors),
		"other", len(r.Other))

	for _, e := range r.FetchErrors {
		log.Warn("fetch error", "url", e.URL, "error", e.Error())
	}
	for _, e := range r.ParseErrors {
		log.Warn("parse error", "url", e.URL, "reason", e.Reason)
	}
	for _, e := range r.Mismatches {
		log.Warn("validation mismatch, curated value kept",
			"card_key", e.CardKey, "field", e.Field,
			"scraped", e.Scraped, "curated", e.Curated)
	}
	for _, e := range r.UploadErrors {
		log.Warn("upload error", "card_key", e.CardKey, "error", e.Error())
	}
	for _, e := range r.Other {
		log.Warn("error", "error", e.Error())
	}
}
