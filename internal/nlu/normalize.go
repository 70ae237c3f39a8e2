package nlu

import (
	"regexp"
	"strings"
)

// punct matches everything that is not a letter, digit, underscore or
// whitespace. Unicode classes so Devanagari input survives.
var punct = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// replacement pairs are applied sequentially on the whole string; order
// matters because later rules can match text produced by earlier ones.
var replacements = [][2]string{
	{"updation", "update"},
	{"constructions", "construction"},
	{"material", "materials"},
	{"safety update", "safety"},
	{"worksite", "site"},
}

var stopWords = map[string]struct{}{}

func init() {
	const stop = "the a an is are was were be been to for on in at from of with and or as what tell give show how when where who which do does can please kindly"
	for _, w := range strings.Fields(stop) {
		stopWords[w] = struct{}{}
	}
}

// Normalize lowercases the input, strips punctuation, applies the literal
// replacement list and removes stop-words. Empty input normalizes to "".
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = punct.ReplaceAllString(t, " ")
	for _, r := range replacements {
		t = strings.ReplaceAll(t, r[0], r[1])
	}

	var kept []string
	for _, w := range strings.Fields(t) {
		if _, skip := stopWords[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
