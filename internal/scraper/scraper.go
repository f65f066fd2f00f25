// Package scraper fetches card-comparison pages and extracts candidate
// card records from them.
package scraper

import (
	"context"
	"time"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
)

const (
	// DefaultUserAgent is sent when none is configured.
	DefaultUserAgent = "cardcrawl/1.0 (+https://github.com/jonesrussell/cardcrawl)"
	// DefaultRequestTimeout bounds each page fetch so a slow site cannot
	// hang the run indefinitely.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultDelay is the pause between requests to the same host.
	DefaultDelay = 2 * time.Second
)

// Config configures the scraper.
type Config struct {
	UserAgent      string
	RequestTimeout time.Duration
	Delay          time.Duration
}

// SetDefaults fills unset fields with default values.
func (c *Config) SetDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.Delay <= 0 {
		c.Delay = DefaultDelay
	}
}

// Result holds the outcome of a scraper run: candidates from every page
// that could be fetched, plus the fetch/parse errors collected along the
// way. Errors never abort the run.
type Result struct {
	Candidates []domain.Candidate
	Errors     []error
}

// Scraper fetches a fixed list of target URLs sequentially.
type Scraper struct {
	cfg       Config
	extractor *Extractor
	log       logger.Interface
}

// New creates a scraper.
func New(cfg Config, log logger.Interface) *Scraper {
	cfg.SetDefaults()
	return &Scraper{
		cfg:       cfg,
		extractor: NewExtractor(),
		log:       log,
	}
}

// Run fetches each URL in order and extracts candidates. A failed URL is
// logged, recorded in the result, and skipped; remaining URLs still run.
func (s *Scraper) Run(ctx context.Context, urls []string) (*Result, error) {
	result := &Result{}

	for _, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		body, fetchErr := s.fetch(pageURL)
		if fetchErr != nil {
			s.log.Warn("skipping source", "url", pageURL, "error", fetchErr)
			result.Errors = append(result.Errors, fetchErr)
			continue
		}

		candidates, parseErrs := s.extractor.Extract(pageURL, body)
		for _, parseErr := range parseErrs {
			s.log.Debug("skipping fragment", "url", pageURL, "error", parseErr)
		}
		result.Errors = append(result.Errors, parseErrs...)
		result.Candidates = append(result.Candidates, candidates...)

		s.log.Info("scraped source",
			"url", pageURL,
			"candidates", len(candidates),
			"fragment_errors", len(parseErrs))
	}

	return result, nil
}

// fetch retrieves a single page. Returns a FetchError on transport
// failure or non-2xx status.
func (s *Scraper) fetch(pageURL string) ([]byte, *domain.FetchError) {
	c := colly.NewCollector(colly.UserAgent(s.cfg.UserAgent))
	c.SetRequestTimeout(s.cfg.RequestTimeout)
	if err := c.Limit(&colly.LimitRule{DomainGlob: "*", Delay: s.cfg.Delay}); err != nil {
		return nil, &domain.FetchError{URL: pageURL, Err: err}
	}

	var (
		body     []byte
		fetchErr *domain.FetchError
	)

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		fe := &domain.FetchError{URL: pageURL, Err: err}
		if r != nil {
			fe.StatusCode = r.StatusCode
		}
		fetchErr = fe
	})

	// colly surfaces HTTP-level failures both from Visit and via OnError;
	// only the OnError callback sees the response, so its FetchError (which
	// carries the status code) takes precedence over the bare Visit error.
	visitErr := c.Visit(pageURL)
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if visitErr != nil {
		return nil, &domain.FetchError{URL: pageURL, Err: visitErr}
	}
	return body, nil
}
