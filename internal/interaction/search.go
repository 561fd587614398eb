package interaction

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const longTokenRunes = 14

var (
	imageHints         = []string{"image", "photo", "picture", "icon", "logo", "screenshot", "png", "jpg", "jpeg", "gif", "svg"}
	commonMisspellings = []string{"recieve", "definately", "seperate", "occured", "accomodate", "publically", "wich", "adress", "enviroment"}

	imageURL       = regexp2.MustCompile(`\bhttps?://\S+\.(png|jpg|jpeg|gif|svg)\b`, regexp2.ECMAScript|regexp2.IgnoreCase)
	repeatedLetter = regexp2.MustCompile(`(.)\1{2,}`, regexp2.ECMAScript)
)

var searchTable = []scorer{
	{id: "search_image", action: ActionImageSearch, reason: "visual_intent_detected", score: scoreImageIntent},
	{id: "search_voice", action: ActionVoiceSearch, reason: "voice_intent_detected", score: scoreVoice},
	{id: "search_spell", action: ActionSpellCheck, reason: "possible_spelling_issues", score: scoreSpellCheck},
}

// ResolveSearchActions ranks advisory actions for a search query.
func ResolveSearchActions(input string, ctx Context) []Suggestion {
	return resolve(CategorySearch, searchTable, input, ctx)
}

// scoreImageIntent matches the URL pattern against the raw input; the
// pattern itself is case-insensitive.
func scoreImageIntent(input string, _ Context) float64 {
	s := addHits(0, strings.ToLower(input), imageHints, 0.2)
	if matches(imageURL, input) {
		s += 0.6
	}
	return capScore(s)
}

func scoreSpellCheck(input string, _ Context) float64 {
	t := strings.ToLower(input)
	s := addHits(0, t, commonMisspellings, 0.5)
	if matches(repeatedLetter, t) {
		s += 0.3
	}
	for _, w := range strings.Fields(t) {
		if utf8.RuneCountInString(w) > longTokenRunes {
			s += 0.2
			break
		}
	}
	return capScore(s)
}
