package fontfind

import (
	"strings"
)

// DefaultKeywords are lower-case file name fragments of font families with
// broad or CJK coverage.
var DefaultKeywords = []string{
	"sim", "msyh", "msjh", "fang", "noto", "hei", "song", "kai", "yahei",
	"deng", "pingfang", "sourcehansans", "sourcehanserif", "wqy", "wenquanyi",
	"cjk", "arphic", "uming", "ukai",
}

// Matcher decides whether the font at path plausibly covers testChar.
type Matcher func(path, testChar string) bool

// KeywordMatcher returns a Matcher that accepts any path whose lower-cased
// form contains one of keywords. The test character is not consulted.
func KeywordMatcher(keywords ...string) Matcher {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}

	return func(path, _ string) bool {
		lower := strings.ToLower(path)
		for _, k := range lowered {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

var defaultMatcher = KeywordMatcher(DefaultKeywords...)

// FontHasGlyph guesses from the file name alone whether the font at fontPath
// contains testChar. It does not open the file, so the answer is the same for
// every character.
func FontHasGlyph(fontPath, testChar string) bool {
	return defaultMatcher(fontPath, testChar)
}
