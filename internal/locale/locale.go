// Package locale defines the fixed set of content languages and the
// fallback rules used to flatten per-language fields into a single value.
package locale

import "strings"

type Language string

const (
	English   Language = "en"
	Hindi     Language = "hi"
	Bengali   Language = "bn"
	Tamil     Language = "ta"
	Telugu    Language = "te"
	Gujarati  Language = "gu"
	Punjabi   Language = "pa"
	Odia      Language = "or"
	Assamese  Language = "as"
	Kannada   Language = "kn"
	Malayalam Language = "ml"
	Marathi   Language = "mr"
	Nepali    Language = "ne"
	Urdu      Language = "ur"
	Sanskrit  Language = "sa"
)

// Default is the fallback language every record is expected to carry.
const Default = English

var supported = []Language{
	English,
	Hindi, Bengali, Tamil, Telugu, Gujarati, Punjabi, Odia,
	Assamese, Kannada, Malayalam, Marathi, Nepali, Urdu, Sanskrit,
}

var supportedSet = func() map[Language]bool {
	m := make(map[Language]bool, len(supported))
	for _, l := range supported {
		m[l] = true
	}
	return m
}()

// Supported returns the allow-list of language codes, default first.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func IsSupported(lang Language) bool {
	return supportedSet[lang]
}

// Normalize case-folds a client supplied code and substitutes Default when
// the result is empty or not in the allow-list.
func Normalize(raw string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if !IsSupported(lang) {
		return Default
	}
	return lang
}
