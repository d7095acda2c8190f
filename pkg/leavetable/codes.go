package leavetable

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AbsenceCode is the closed set of reasons a person is away on a day
type AbsenceCode string

const (
	Present     AbsenceCode = ""
	DayOff      AbsenceCode = "FOLGA"
	Holiday     AbsenceCode = "FERIAS"
	Training    AbsenceCode = "FORMACAO"
	Unavailable AbsenceCode = "INDISPONIVEL"
)

// AbsenceCodes lists every absence code in matching order
var AbsenceCodes = []AbsenceCode{DayOff, Holiday, Training, Unavailable}

// IsAbsent reports whether the code marks the person away
func (c AbsenceCode) IsAbsent() bool {
	return c != Present
}

// Label returns the code as written in the leave table
func (c AbsenceCode) Label() string {
	switch c {
	case Holiday:
		return "FÉRIAS"
	case Training:
		return "FORMAÇÃO"
	case Unavailable:
		return "INDISPONÍVEL"
	}
	return string(c)
}

// ParseCode maps free text from a leave table cell to an absence code.
//
// Matching is case-insensitive, ignores accents and accepts the keyword anywhere
// in the text (so "Férias (2ª semana)" is a Holiday). Blank or unrecognised text
// means the person is present.
func ParseCode(text string) AbsenceCode {
	normalized := fold(text)
	if normalized == "" {
		return Present
	}

	for _, code := range AbsenceCodes {
		if normalized == string(code) {
			return code
		}
	}

	// Legacy spreadsheets carry notes around the keyword
	for _, code := range AbsenceCodes {
		if strings.Contains(normalized, string(code)) {
			return code
		}
	}
	return Present
}

// fold upper-cases text and strips diacritics: "Formação" -> "FORMACAO"
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(text))
	if err != nil {
		stripped = strings.TrimSpace(text)
	}
	return strings.ToUpper(stripped)
}
