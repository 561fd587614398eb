package intent

import (
	"slices"

	"actionkernel/pkg/domain"
)

// DefaultTables returns a fresh copy of the built-in keyword tables.
func DefaultTables() Tables {
	return Tables{
		Actions: cloneCandidates(actionCandidates),
		Targets: cloneCandidates(targetCandidates),
		Scopes:  cloneCandidates(scopeCandidates),
	}
}

var actionCandidates = []Candidate[domain.VoiceActionType]{
	{Value: domain.ActionCall, Keywords: []string{"call", "dial", "ring"}, Increment: 0.4, Reason: "call_keywords"},
	{Value: domain.ActionSearch, Keywords: []string{"search", "find", "lookup", "query"}, Increment: 0.35, Reason: "search_keywords"},
	{Value: domain.ActionOpen, Keywords: []string{"open", "launch", "start"}, Increment: 0.4, Reason: "open_keywords"},
	{Value: domain.ActionPlay, Keywords: []string{"play", "listen", "watch"}, Increment: 0.35, Reason: "play_keywords"},
	{Value: domain.ActionControl, Keywords: []string{"turn on", "turn off", "increase", "decrease", "set"}, Increment: 0.4, Reason: "control_keywords"},
}

var targetCandidates = []Candidate[domain.VoiceTargetType]{
	{Value: domain.TargetApp, Keywords: []string{"app", "application", "spotify", "youtube", "browser"}, Increment: 0.3, Reason: "app_keywords"},
	{Value: domain.TargetSystem, Keywords: []string{"settings", "brightness", "volume", "wifi", "bluetooth", "system"}, Increment: 0.3, Reason: "system_keywords"},
	{Value: domain.TargetWeb, Keywords: []string{"website", "web", "http", "https", "open google", "search web"}, Increment: 0.3, Reason: "web_keywords"},
	{Value: domain.TargetContact, Keywords: []string{"call mom", "call dad", "message john", "contact"}, Increment: 0.3, Reason: "contact_keywords"},
	{Value: domain.TargetService, Keywords: []string{"service", "assistant", "api", "provider"}, Increment: 0.3, Reason: "service_keywords"},
}

var scopeCandidates = []Candidate[domain.VoiceScope]{
	{Value: domain.VoiceScopeLocal, Keywords: []string{"settings", "volume", "brightness", "app", "open"}, Increment: 0.25, Reason: "local_signals"},
	{Value: domain.VoiceScopeWeb, Keywords: []string{"website", "search", "browser", "web", "http", "https"}, Increment: 0.25, Reason: "web_signals"},
	{Value: domain.VoiceScopeDevice, Keywords: []string{"bluetooth", "wifi", "dial", "ring", "camera"}, Increment: 0.25, Reason: "device_signals"},
}

func cloneCandidates[T ~string](in []Candidate[T]) []Candidate[T] {
	out := make([]Candidate[T], len(in))
	for i, c := range in {
		c.Keywords = slices.Clone(c.Keywords)
		out[i] = c
	}
	return out
}
