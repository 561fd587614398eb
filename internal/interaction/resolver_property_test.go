//go:build property
// +build property

package interaction_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"actionkernel/internal/interaction"
)

// TestResolversRankAndCap verifies the shape every resolver output has.
// Property: len <= 3, confidences non-increasing and >= threshold,
// advisory flags set.
func TestResolversRankAndCap(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	words := gen.OneConstOf(
		"voice", "speak", "screen", "tab", "it", "this", "summarize", "tl;dr",
		"workspace", "switch workspace", "photo", "png", "wich", "sooo",
		"https://x.io/a.gif", "plain", "",
	)

	properties.Property("resolver output is capped, sorted and advisory", prop.ForAll(
		func(parts []string, voice, screen bool, conf float64) bool {
			text := ""
			for _, p := range parts {
				text += p + " "
			}
			ctx := interaction.Context{VoiceAvailable: voice, ScreenAvailable: screen}.WithSessionConfidence(conf)
			threshold := interaction.Threshold(ctx)

			for _, got := range [][]interaction.Suggestion{
				interaction.ResolveChatActions(text, ctx),
				interaction.ResolveSearchActions(text, ctx),
			} {
				if len(got) > interaction.MaxSuggestions {
					return false
				}
				for i, s := range got {
					if !s.NonBlocking || !s.Dismissible || !s.Optional {
						return false
					}
					if s.Confidence < threshold || s.Confidence > 1 {
						return false
					}
					if i > 0 && got[i-1].Confidence < s.Confidence {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(words), gen.Bool(), gen.Bool(), gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
