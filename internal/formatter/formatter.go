// Package formatter applies the scholarly house style to generated replies.
package formatter

import (
	"strings"

	"art-historian/internal/locale"
	"art-historian/internal/model"
)

// contractions are expanded in this order. Matching is case-sensitive and
// ignores word boundaries.
var contractions = []struct{ from, to string }{
	{"you're", "you are"},
	{"don't", "do not"},
	{"can't", "cannot"},
	{"I'm", "I am"},
	{"it's", "it is"},
}

// Format adds the language's opening and closing when missing and, for
// English, expands common contractions.
func Format(text string, lang model.Language) string {
	b := locale.For(lang)

	if !hasAnyPrefix(text, b.Openings) && len(b.Openings) > 0 {
		text = b.Openings[0] + " " + text
	}

	// A reply already closed in any language is left alone.
	if !hasAnySuffix(text, locale.Closings()) {
		text += b.Closing
	}

	if lang == model.LanguageEnglish {
		for _, c := range contractions {
			text = strings.ReplaceAll(text, c.from, c.to)
		}
	}

	return text
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, x := range suffixes {
		if strings.HasSuffix(s, x) {
			return true
		}
	}
	return false
}
