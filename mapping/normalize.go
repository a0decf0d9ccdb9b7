package mapping

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// normalizeText returns the comparison form used by every matching strategy:
// lower-cased and trimmed. Diacritics are kept here; accent-insensitive
// comparison is a second chance applied inside containsEither/wordOverlap.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// foldDiacritics strips Vietnamese (and any other) diacritical marks:
// NFD decomposition, drop combining marks, map đ/Đ to d. Operators often
// type headers without accents ("Thang Luong"), so both sides of every
// fuzzy comparison are folded symmetrically.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))

	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			b.WriteRune('d')
		case 'Đ':
			b.WriteRune('D')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// tokenize splits a normalized string into word tokens on any
// non-letter/non-digit rune.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

var stemCache sync.Map // string -> string

// stemToken stems a single folded token with the Snowball English stemmer.
// Vietnamese tokens pass through unchanged; English alias vocabulary
// ("bonuses", "allowances") collapses to a shared stem. Falls back to the
// input token when the stemmer rejects it.
func stemToken(token string) string {
	if token == "" {
		return ""
	}
	if cached, ok := stemCache.Load(token); ok {
		return cached.(string)
	}

	stemmed, err := snowball.Stem(token, "english", true)
	if err != nil || stemmed == "" {
		stemmed = token
	}
	stemCache.Store(token, stemmed)
	return stemmed
}

// compareTokens produces the folded+stemmed token set used by word overlap.
// Single-rune tokens are dropped: they match almost anything.
func compareTokens(s string) []string {
	raw := tokenize(foldDiacritics(normalizeText(s)))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len([]rune(t)) < 2 {
			continue
		}
		out = append(out, stemToken(t))
	}
	return out
}

// containsEither reports whether one string contains the other after
// normalization, comparing both the accented and the folded forms.
func containsEither(a, b string) bool {
	na, nb := normalizeText(a), normalizeText(b)
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	fa, fb := foldDiacritics(na), foldDiacritics(nb)
	return strings.Contains(fa, fb) || strings.Contains(fb, fa)
}

// wordOverlap reports whether any token of one string appears as a
// substring of a token of the other, in either direction.
func wordOverlap(a, b string) bool {
	ta := compareTokens(a)
	tb := compareTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}

	for _, wa := range ta {
		for _, wb := range tb {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}
	return false
}

// overlapRatio returns the fraction of a's tokens that overlap with some
// token of b. Used by the suggestion generator to grade partial matches.
func overlapRatio(a, b string) float64 {
	ta := compareTokens(a)
	tb := compareTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	matched := 0
	for _, wa := range ta {
		for _, wb := range tb {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(ta))
}
