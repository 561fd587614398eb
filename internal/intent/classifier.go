package intent

import "strings"

// Classifier turns transcripts into commands by keyword scoring. Matching is
// by substring on the lower-cased text, so a keyword may hit mid-word.
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	tables Tables
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTables replaces the built-in keyword tables. Empty lists are ignored so
// every sub-classifier always has at least one candidate.
func WithTables(t Tables) Option {
	return func(c *Classifier) {
		if len(t.Actions) > 0 {
			c.tables.Actions = cloneCandidates(t.Actions)
		}
		if len(t.Targets) > 0 {
			c.tables.Targets = cloneCandidates(t.Targets)
		}
		if len(t.Scopes) > 0 {
			c.tables.Scopes = cloneCandidates(t.Scopes)
		}
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{tables: DefaultTables()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// ParseVoiceIntent classifies transcript with the built-in tables.
func ParseVoiceIntent(transcript string) []Command {
	return defaultClassifier.Parse(transcript)
}

// Parse classifies transcript. The result always holds exactly one command;
// the slice leaves room for ranked alternatives later.
func (c *Classifier) Parse(transcript string) []Command {
	text := strings.ToLower(transcript)

	action := detect(text, c.tables.Actions)
	target := detect(text, c.tables.Targets)
	scope := detect(text, c.tables.Scopes)

	confidence := min(1, (action.score+target.score+scope.score)/3)

	return []Command{{
		ActionType: action.value,
		Target:     target.value,
		Scope:      scope.value,
		Confidence: confidence,
		Reason:     action.reason + "|" + target.reason + "|" + scope.reason,
		Text:       transcript,
	}}
}

type match[T ~string] struct {
	value  T
	score  float64
	reason string
}

// detect returns the first candidate in declared order with the highest
// score. Later candidates must score strictly higher to win.
func detect[T ~string](text string, candidates []Candidate[T]) match[T] {
	best := match[T]{score: -1}
	for _, cand := range candidates {
		s := score(text, cand.Keywords, cand.Increment)
		if s > best.score {
			best = match[T]{value: cand.Value, score: s, reason: cand.Reason}
		}
	}
	return best
}

// score adds increment once per keyword found and caps the total at 1.
// Hits are accumulated one at a time so float rounding matches a running sum.
func score(text string, keywords []string, increment float64) float64 {
	s := 0.0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			s += increment
		}
	}
	if s > 1 {
		s = 1
	}
	return s
}
