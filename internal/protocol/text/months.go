package text

import "github.com/danmuck/dtclock/internal/protocol"

// monthNames is indexed by month-1, then by language index.
var monthNames = [12][protocol.LanguageCount]string{
	{"January", "Kohitātea", "Januar"},
	{"February", "Hui-tanguru", "Februar"},
	{"March", "Poutū-te-rangi", "März"},
	{"April", "Paenga-whāwhā", "April"},
	{"May", "Haratua", "Mai"},
	{"June", "Pipiri", "Juni"},
	{"July", "Hōngongoi", "Juli"},
	{"August", "Here-turi-kōkā", "August"},
	{"September", "Mahuru", "September"},
	{"October", "Whiringa-ā-nuku", "Oktober"},
	{"November", "Whiringa-ā-rangi", "November"},
	{"December", "Hakihea", "Dezember"},
}

// MonthName returns the localized name of month (1-12) in lang.
func MonthName(month uint8, lang protocol.Language) (string, bool) {
	if month < 1 || month > 12 || !lang.Valid() {
		return "", false
	}
	return monthNames[month-1][lang], true
}
