package scraper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/scraper"
)

func testConfig() scraper.Config {
	return scraper.Config{
		RequestTimeout: 5 * time.Second,
		Delay:          time.Millisecond,
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(comparisonPageHTML))
	}))
	defer srv.Close()

	s := scraper.New(testConfig(), logger.NewNoOp())
	result, err := s.Run(context.Background(), []string{srv.URL})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Candidates, 3)
	for _, c := range result.Candidates {
		assert.Equal(t, srv.URL, c.SourceURL)
	}
}

func TestRunFailedSourceDoesNotAbort(t *testing.T) {
	t.Parallel()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(duplicateHeadingsHTML))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer bad.Close()

	s := scraper.New(testConfig(), logger.NewNoOp())
	result, err := s.Run(context.Background(), []string{bad.URL, good.URL})
	require.NoError(t, err)

	// The failing source is recorded, the good one still scraped.
	require.Len(t, result.Errors, 1)
	var fetchErr *domain.FetchError
	require.True(t, errors.As(result.Errors[0], &fetchErr))
	assert.Equal(t, bad.URL, fetchErr.URL)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)

	assert.Len(t, result.Candidates, 1)
}

func TestRunTransportFailureHasNoStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := scraper.New(testConfig(), logger.NewNoOp())
	result, err := s.Run(context.Background(), []string{srv.URL})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	var fetchErr *domain.FetchError
	require.True(t, errors.As(result.Errors[0], &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Err)
}

func TestRunHonoursContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scraper.New(testConfig(), logger.NewNoOp())
	_, err := s.Run(ctx, []string{"http://127.0.0.1:0/unreachable"})
	assert.ErrorIs(t, err, context.Canceled)
}
