package morphology

import (
	"strings"
	"unicode"
)

// TurkishLower lowercases s with Turkish casing rules: dotted İ maps to
// i and dotless I maps to ı.
func TurkishLower(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// circumflexReplacer drops the circumflex Turkish orthography puts on a,
// i and u in loanwords (kâğıt, millî, mahkûm). The lexicon spells these
// without it.
var circumflexReplacer = strings.NewReplacer(
	"\u00e2", "a",      // â → a
	"\u00ee", "i",      // î → i
	"\u00fb", "u",      // û → u
	"\u00c2", "A",      // Â → A
	"\u00ce", "\u0130", // Î → İ
	"\u00db", "U",      // Û → U
)

// StripCircumflex removes circumflex accents from s.
func StripCircumflex(s string) string {
	return circumflexReplacer.Replace(s)
}

// NormalizeWord prepares a raw token for lookup: it strips circumflexes
// and lowercases with Turkish rules.
func NormalizeWord(s string) string {
	return TurkishLower(StripCircumflex(strings.TrimSpace(s)))
}
