package interaction

import (
	"actionkernel/pkg/domain"
	dErrors "actionkernel/pkg/domain-errors"
)

// Category groups suggestions by the surface that produced them.
type Category string

const (
	CategoryChat   Category = "chat"
	CategorySearch Category = "search"
)

// ParseCategory constructs a Category from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryChat, CategorySearch:
		return c, nil
	case "":
		return "", dErrors.New(dErrors.CodeInvalidInput, "category cannot be empty")
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid category: "+s)
	}
}

func (c Category) String() string {
	return string(c)
}

// Action is the advisory action a suggestion proposes.
type Action string

// Chat actions.
const (
	ActionVoiceInput       Action = "voice_input"
	ActionScreenContext    Action = "screen_context"
	ActionClarifyIntent    Action = "clarify_intent"
	ActionSummarizeContext Action = "summarize_context"
	ActionSwitchWorkspace  Action = "switch_workspace"
)

// Search actions.
const (
	ActionImageSearch Action = "image_search"
	ActionVoiceSearch Action = "voice_search"
	ActionSpellCheck  Action = "spell_check"
)

// Suggestion is an advisory, in-context action. Suggestions are never
// mandatory steps: NonBlocking, Dismissible and Optional are always true, and
// the only way to build one is newSuggestion.
type Suggestion struct {
	ID          string           `json:"id"`
	Category    Category         `json:"category"`
	Action      Action           `json:"action"`
	Confidence  float64          `json:"confidence"`
	Reason      string           `json:"reason"`
	Scope       domain.DataScope `json:"scope"`
	NonBlocking bool             `json:"non_blocking"`
	Dismissible bool             `json:"dismissible"`
	Optional    bool             `json:"optional"`
	Visible     bool             `json:"visible"`
}

// Context is the lightweight session state a resolver may consult. Every
// field is optional.
type Context struct {
	PrivacyScope      domain.DataScope `json:"privacy_scope,omitempty"`
	SessionConfidence *float64         `json:"session_confidence,omitempty"`
	ActiveWorkspaceID string           `json:"active_workspace_id,omitempty"`
	ScreenAvailable   bool             `json:"screen_available,omitempty"`
	VoiceAvailable    bool             `json:"voice_available,omitempty"`
	IntentHints       []string         `json:"intent_hints,omitempty"`
}

// WithSessionConfidence returns a copy of c carrying confidence.
func (c Context) WithSessionConfidence(confidence float64) Context {
	c.SessionConfidence = &confidence
	return c
}
