package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported to the user. All of them leave the session usable.
var (
	ErrLengthExceeded  = errors.New("asset exceeds character limit")
	ErrMissingFinalURL = errors.New("final URL is required")
	ErrEmptyBatch      = errors.New("export batch is empty")
)

// Violation names one asset slot that is over its character limit
type Violation struct {
	Kind  AssetKind
	Index int // zero based
	Count int
	Limit int
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %d has %d characters (max %d)", v.Kind, v.Index+1, v.Count, v.Limit)
}

// ValidationError explains why an ad could not be added to the batch.
// errors.Is matches it against ErrLengthExceeded or ErrMissingFinalURL.
type ValidationError struct {
	Kind       error
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.Kind.Error()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// CheckLengths returns every asset slot that exceeds its character limit
func CheckLengths(c *AssetCollection) []Violation {
	var out []Violation
	for _, kind := range []AssetKind{Headline, Description} {
		for i, text := range *c.list(kind) {
			if n := CharCount(text); n > kind.CharLimit() {
				out = append(out, Violation{Kind: kind, Index: i, Count: n, Limit: kind.CharLimit()})
			}
		}
	}
	return out
}
