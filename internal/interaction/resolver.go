package interaction

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"

	"actionkernel/pkg/domain"
)

const (
	defaultThreshold = 0.6
	minThreshold     = 0.5
	maxThreshold     = 0.8

	// MaxSuggestions caps how many suggestions a resolver returns.
	MaxSuggestions = 3
)

// scorer is one row of a resolver table. Rows are evaluated in declared
// order, and that order breaks confidence ties after sorting.
type scorer struct {
	id     string
	action Action
	reason string
	score  func(text string, ctx Context) float64
}

// Threshold is the minimum confidence a candidate needs: the session
// confidence clamped to [0.5, 0.8], or 0.6 without one.
func Threshold(ctx Context) float64 {
	if ctx.SessionConfidence == nil {
		return defaultThreshold
	}
	return max(minThreshold, min(maxThreshold, *ctx.SessionConfidence))
}

// resolve scores text against table and returns at most MaxSuggestions
// suggestions, highest confidence first.
func resolve(category Category, table []scorer, text string, ctx Context) []Suggestion {
	threshold := Threshold(ctx)
	scope := domain.NormalizeScope(ctx.PrivacyScope)

	kept := make([]Suggestion, 0, len(table))
	for _, sc := range table {
		confidence := sc.score(text, ctx)
		if confidence < threshold {
			continue
		}
		kept = append(kept, newSuggestion(category, sc, confidence, scope))
	}

	slices.SortStableFunc(kept, func(a, b Suggestion) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	if len(kept) > MaxSuggestions {
		kept = kept[:MaxSuggestions]
	}
	return kept
}

func newSuggestion(category Category, sc scorer, confidence float64, scope domain.DataScope) Suggestion {
	return Suggestion{
		ID:          sc.id,
		Category:    category,
		Action:      sc.action,
		Confidence:  confidence,
		Reason:      sc.reason,
		Scope:       scope,
		NonBlocking: true,
		Dismissible: true,
		Optional:    true,
		Visible:     true,
	}
}

// addHits adds increment to s once for every hint contained in text. Hits
// are added one at a time onto the running score so rounding follows a plain
// running sum.
func addHits(s float64, text string, hints []string, increment float64) float64 {
	for _, h := range hints {
		if strings.Contains(text, h) {
			s += increment
		}
	}
	return s
}

func capScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	return s
}

// matches reports whether re matches s. Patterns carry no timeout, so the
// only error regexp2 can return does not occur; it is treated as no match.
func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
