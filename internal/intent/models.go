package intent

import "actionkernel/pkg/domain"

// Command is a transcript classified into action, target and scope, with the
// mean confidence of the three winning sub-scores.
type Command struct {
	ActionType domain.VoiceActionType `json:"action_type"`
	Target     domain.VoiceTargetType `json:"target"`
	Scope      domain.VoiceScope      `json:"scope"`
	Confidence float64                `json:"confidence"`
	Reason     string                 `json:"reason"`
	Text       string                 `json:"text"`
}

// Candidate is one row of a classification table: the value it votes for, the
// substrings that count as hits, and what each hit adds.
type Candidate[T ~string] struct {
	Value     T
	Keywords  []string
	Increment float64
	Reason    string
}

// Tables holds the ordered candidate lists for each sub-classifier.
// Declaration order breaks score ties, so it is part of the behavior.
type Tables struct {
	Actions []Candidate[domain.VoiceActionType]
	Targets []Candidate[domain.VoiceTargetType]
	Scopes  []Candidate[domain.VoiceScope]
}
