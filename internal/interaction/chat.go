package interaction

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var (
	voiceHints     = []string{"voice", "audio", "speak", "talk", "dictate", "microphone"}
	screenHints    = []string{"on screen", "this page", "tab", "window", "panel", "dashboard", "viewer", "screen"}
	ambiguousHints = []string{"it", "that", "this", "thing", "stuff"}
	summaryHints   = []string{"summarize", "summary", "condense", "tl;dr"}
	workspaceHints = []string{"switch workspace", "change workspace", "move to", "open workspace", "project workspace", "workspace"}

	namedWorkspace = regexp2.MustCompile(`\bworkspace\s+\w+`, regexp2.ECMAScript)
)

var chatTable = []scorer{
	{id: "chat_voice_input", action: ActionVoiceInput, reason: "voice_input_intent", score: scoreVoice},
	{id: "chat_screen_context", action: ActionScreenContext, reason: "screen_context_relevant", score: scoreScreenContext},
	{id: "chat_clarify_intent", action: ActionClarifyIntent, reason: "ambiguity_detected", score: scoreClarifyIntent},
	{id: "chat_summarize_context", action: ActionSummarizeContext, reason: "summary_suggested", score: scoreSummarizeContext},
	{id: "chat_switch_workspace", action: ActionSwitchWorkspace, reason: "workspace_switch_intent", score: scoreSwitchWorkspace},
}

// ResolveChatActions ranks advisory actions for a chat message.
func ResolveChatActions(message string, ctx Context) []Suggestion {
	return resolve(CategoryChat, chatTable, message, ctx)
}

// scoreVoice is shared by the chat and search tables.
func scoreVoice(text string, ctx Context) float64 {
	s := addHits(0, strings.ToLower(text), voiceHints, 0.25)
	if ctx.VoiceAvailable {
		s += 0.2
	}
	return capScore(s)
}

func scoreScreenContext(text string, ctx Context) float64 {
	s := addHits(0, strings.ToLower(text), screenHints, 0.2)
	if ctx.ScreenAvailable {
		s += 0.2
	}
	return capScore(s)
}

// scoreClarifyIntent rewards short messages, vague pronouns and a session
// that is already unsure of itself.
func scoreClarifyIntent(text string, ctx Context) float64 {
	t := strings.ToLower(text)
	s := 0.0
	if utf8.RuneCountInString(t) < 10 {
		s += 0.4
	}
	s = addHits(s, t, ambiguousHints, 0.2)
	if ctx.SessionConfidence != nil && *ctx.SessionConfidence < 0.5 {
		s += 0.3
	}
	return capScore(s)
}

func scoreSummarizeContext(text string, ctx Context) float64 {
	t := strings.ToLower(text)
	s := 0.0
	if utf8.RuneCountInString(t) > 200 {
		s += 0.5
	}
	if slices.Contains(ctx.IntentHints, "summary") {
		s += 0.3
	}
	s = addHits(s, t, summaryHints, 0.3)
	return capScore(s)
}

func scoreSwitchWorkspace(text string, _ Context) float64 {
	t := strings.ToLower(text)
	s := addHits(0, t, workspaceHints, 0.2)
	if matches(namedWorkspace, t) {
		s += 0.3
	}
	return capScore(s)
}
