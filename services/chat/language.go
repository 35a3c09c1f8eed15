package chat

import "strings"

// Language tags the natural-language variant a reply is written in.
type Language string

const (
	LangEnglish    Language = "english"
	LangUrdu       Language = "urdu"
	LangHindi      Language = "hindi"
	LangRomanUrdu  Language = "roman-urdu"
	LangRomanHindi Language = "roman-hindi"
)

// romanUrduWords and romanHindiWords overlap heavily; detection order makes
// Roman-Urdu win for ambiguous romanized input.
var romanUrduWords = []string{
	"kya", "hai", "hain", "ke", "ka", "ki", "aur", "main", "mein", "ap", "aap",
	"yeh", "ye", "woh", "wo", "kaise", "kahan", "kab", "kyun", "kitna", "kitne",
	"kapde", "dress", "price", "qeemat", "rang", "color", "size", "saiz",
}

var romanHindiWords = []string{
	"kya", "hai", "hain", "aur", "main", "mein", "aap", "yah", "vah", "kaise",
	"kahan", "kab", "kyun", "kitna", "kitne", "kapda", "dress", "daam", "rang",
	"color", "size",
}

// DetectLanguage classifies text by script first, then by romanized keyword
// membership. It always returns a value and never varies for the same input.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return LangUrdu
		}
	}
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return LangHindi
		}
	}

	message := strings.ToLower(text)
	for _, word := range romanUrduWords {
		if strings.Contains(message, word) {
			return LangRomanUrdu
		}
	}
	for _, word := range romanHindiWords {
		if strings.Contains(message, word) {
			return LangRomanHindi
		}
	}
	return LangEnglish
}
