package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FmtNumber groups digits the way lang expects: 1,250 in English, 1.250 in Indonesian.
func FmtNumber(n int, lang string) string {
	return printer(lang).Sprintf("%d", n)
}

// FmtCount renders "<n> <noun>" with a localised number.
func FmtCount(n int, noun, lang string) string {
	return printer(lang).Sprintf("%d %s", n, noun)
}

// Year returns the four-digit year of t.
func Year(t time.Time) int { return t.Year() }

func printer(lang string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
