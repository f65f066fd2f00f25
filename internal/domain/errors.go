package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when the store URL or secret key is
// absent. It is the only fatal error class: nothing runs without it.
var ErrMissingCredentials = errors.New(
	"store credentials required: set SUPABASE_URL and SUPABASE_KEY",
)

// FetchError reports a failed page fetch (network error, timeout, or
// non-2xx status). The URL is skipped; the run continues.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports an unparseable page fragment. The fragment is
// skipped; the rest of the page continues.
type ParseError struct {
	URL    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.URL, e.Reason)
}

// ValidationMismatch reports a scraped field that conflicts with the
// curated dataset. The curated value wins; the mismatch is reported.
type ValidationMismatch struct {
	CardKey string
	Field   string
	Scraped string
	Curated string
}

func (e *ValidationMismatch) Error() string {
	return fmt.Sprintf("card %s: scraped %s %q conflicts with curated %q",
		e.CardKey, e.Field, e.Scraped, e.Curated)
}

// UploadError reports a failed upsert for one card. Remaining cards are
// not blocked.
type UploadError struct {
	CardKey string
	Err     error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload card %s: %v", e.CardKey, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
