package index

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// phoneticWord holds the Double Metaphone codes of one word.
// alt is empty when the word has a single pronunciation.
type phoneticWord struct {
	primary string
	alt     string
}

// words splits text on anything that is not a letter or digit.
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// encode maps a word to its phonetic codes. Words without a phonetic code
// (numbers, for example) are kept verbatim under a prefix that cannot
// collide with a metaphone code.
func encode(word string) phoneticWord {
	primary, alt := matchr.DoubleMetaphone(word)
	if primary == "" {
		return phoneticWord{primary: "=" + strings.ToLower(word)}
	}
	if alt == primary {
		alt = ""
	}
	return phoneticWord{primary: primary, alt: alt}
}

// tokens returns the phonetic codes of every word in text.
func tokens(text string) []phoneticWord {
	ws := words(text)
	out := make([]phoneticWord, 0, len(ws))
	for _, w := range ws {
		out = append(out, encode(w))
	}
	return out
}
