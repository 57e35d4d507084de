// Package text renders the localized payload carried in a dt-response.
package text

import (
	"fmt"

	"github.com/danmuck/dtclock/internal/protocol"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var tags = [protocol.LanguageCount]language.Tag{
	language.English,
	language.MustParse("mi"),
	language.German,
}

// Tag returns the BCP 47 tag for lang.
func Tag(lang protocol.Language) language.Tag {
	if !lang.Valid() {
		return language.Und
	}
	return tags[lang]
}

type templates struct {
	date func(ts protocol.Timestamp, month string) string
	time func(ts protocol.Timestamp) string
}

var byLanguage = [protocol.LanguageCount]templates{
	protocol.English: {
		date: func(ts protocol.Timestamp, month string) string {
			return fmt.Sprintf("Today's date is %s %d, %d", month, ts.Day, ts.Year)
		},
		time: func(ts protocol.Timestamp) string {
			return fmt.Sprintf("The current time is %02d:%02d", ts.Hour, ts.Minute)
		},
	},
	protocol.Maori: {
		date: func(ts protocol.Timestamp, month string) string {
			return fmt.Sprintf("Ko te rā o tēnei rā ko %s %d, %d", month, ts.Day, ts.Year)
		},
		time: func(ts protocol.Timestamp) string {
			return fmt.Sprintf("Ko te wā o tēnei wā %02d:%02d", ts.Hour, ts.Minute)
		},
	},
	protocol.German: {
		date: func(ts protocol.Timestamp, month string) string {
			return fmt.Sprintf("Heute ist der %d. %s %d", ts.Day, month, ts.Year)
		},
		time: func(ts protocol.Timestamp) string {
			return fmt.Sprintf("Die Uhrzeit ist %02d:%02d", ts.Hour, ts.Minute)
		},
	},
}

// Format renders the dt-response text for ts in lang. The result is NFC
// normalized so its byte length is stable for encoding.
//
// Inputs are trusted: lang comes from a bound listening channel, ts.Month
// from the system clock, and kind from a validated request.
func Format(ts protocol.Timestamp, lang protocol.Language, kind protocol.RequestKind) string {
	tpl := byLanguage[lang]
	var out string
	switch kind {
	case protocol.KindDate:
		month, _ := MonthName(ts.Month, lang)
		out = tpl.date(ts, month)
	default:
		out = tpl.time(ts)
	}
	return norm.NFC.String(out)
}
