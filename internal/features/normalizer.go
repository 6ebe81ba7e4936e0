package features

import "strings"

// punctuation removed by StripPunctuation. Characters are deleted, not
// replaced with a space, so "a-b" normalizes to "ab".
const punctuation = ".,;:!?-"

// Options controls feature-name normalization before intersection.
type Options struct {
	Lowercase        bool
	StripPunctuation bool
}

// Normalize applies the configured normalization to each name: punctuation
// is stripped first, then the name is lowercased, then re-trimmed. Names
// that normalize to the empty string are dropped. With both switches off
// the input slice is returned as-is.
func Normalize(items []string, opts Options) []string {
	if !opts.Lowercase && !opts.StripPunctuation {
		return items
	}
	out := make([]string, 0, len(items))
	for _, x := range items {
		y := x
		if opts.StripPunctuation {
			y = strings.Map(func(r rune) rune {
				if strings.ContainsRune(punctuation, r) {
					return -1
				}
				return r
			}, y)
		}
		if opts.Lowercase {
			y = strings.ToLower(y)
		}
		y = strings.TrimSpace(y)
		if y != "" {
			out = append(out, y)
		}
	}
	return out
}
