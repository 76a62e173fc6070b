package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// russian maps Cyrillic runes to their conventional Latin spellings.
// Letters absent from the table fall through to NFKD folding, which
// drops anything that has no ASCII decomposition.
var russian = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "ju", 'я': "ja",
}

var (
	notSlugRunes = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// asciiFold strips diacritics and every remaining non-ASCII rune after
// NFKD decomposition.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Slugify converts free text into a lowercase ASCII identifier suitable
// for file names and URL segments: Cyrillic is transliterated, other
// non-ASCII input is folded best-effort, characters outside word
// characters, whitespace and hyphen are dropped, and runs of whitespace
// or hyphens collapse into a single hyphen. The result may be empty for
// pathological input; callers decide how to handle an empty slug.
//
// Slugify is pure and idempotent.
func Slugify(value string) string {
	return SlugifyWithTable(value, russian)
}

// SlugifyWithTable is Slugify with an explicit transliteration table,
// for names in languages other than Russian.
func SlugifyWithTable(value string, table map[rune]string) string {
	value = transliterate(value, table)
	folded, _, err := transform.String(asciiFold, value)
	if err == nil {
		value = folded
	}
	value = notSlugRunes.ReplaceAllString(strings.ToLower(value), "")
	value = separators.ReplaceAllString(value, "-")
	return strings.Trim(value, "-_")
}

func transliterate(value string, table map[rune]string) string {
	if isASCII(value) || len(table) == 0 {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		lower := unicode.ToLower(r)
		repl, ok := table[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if r != lower && repl != "" {
			// Preserve case so later lowercasing stays a no-op for
			// ASCII input.
			repl = strings.ToUpper(repl[:1]) + repl[1:]
		}
		b.WriteString(repl)
	}
	return b.String()
}

func isASCII(value string) bool {
	for _, r := range value {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
