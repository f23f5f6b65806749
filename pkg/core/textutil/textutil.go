// Package textutil holds the pure value normalizers shared by the form
// state, the section renderers and the deterministic parsers: fluid date
// formatting, CAPS-LOCK correction with Portuguese preposition handling,
// acronym upper-casing and day-difference calculation.
package textutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Portuguese prepositions and articles kept lower-case when not in first
// position (TOMOGRAFIA DE CRANIO -> Tomografia de Cranio).
var lowerWords = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"e": true, "em": true, "com": true, "para": true, "por": true,
	"a": true, "o": true, "as": true, "os": true, "no": true, "na": true,
}

// FormatDate converts a run of digits into a slashed date, inserting the
// separators progressively so a user can type "01012026" and read
// "01/01/2026". Values containing anything besides digits and slashes are
// returned untouched.
func FormatDate(val string) string {
	stripped := strings.TrimSpace(val)
	if stripped == "" {
		return val
	}
	for _, c := range stripped {
		if !unicode.IsDigit(c) && c != '/' {
			return val
		}
	}
	var digits []rune
	for _, c := range stripped {
		if unicode.IsDigit(c) {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return val
	}
	d := string(digits)
	switch n := len(d); {
	case n <= 2:
		return d + "/"
	case n <= 4:
		return d[0:2] + "/" + d[2:4] + "/"
	case n <= 6:
		return d[0:2] + "/" + d[2:4] + "/" + d[4:6]
	default:
		// more than 8 digits: keep the first 8
		if n > 8 {
			d = d[:8]
		}
		return d[0:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, c := range s {
		if unicode.IsLetter(c) {
			hasLetter = true
			if unicode.IsLower(c) {
				return false
			}
		}
	}
	return hasLetter
}

func isNumericish(s string) bool {
	cleaned := strings.NewReplacer(".", "", ",", "", "-", "", "+", "", " ", "").Replace(s)
	if cleaned == "" {
		return false
	}
	for _, c := range cleaned {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

func capitalize(lower string) string {
	r := []rune(lower)
	if len(r) == 0 {
		return lower
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ProperCase fixes CAPS-LOCK text into title case with the Portuguese
// preposition exceptions. It is a no-op on anything that is not fully
// upper-case, and on purely numeric values.
func ProperCase(val string) string {
	s := strings.TrimSpace(val)
	if s == "" || !isAllUpper(s) || isNumericish(s) {
		return val
	}
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && lowerWords[lower] {
			out = append(out, lower)
		} else {
			out = append(out, capitalize(lower))
		}
	}
	return strings.Join(out, " ")
}

func lettersOnly(w string) bool {
	cleaned := strings.NewReplacer("-", "", ".", "").Replace(w)
	if cleaned == "" {
		return false
	}
	for _, c := range cleaned {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

// ObsLine fixes a CAPS-LOCK observation line, treating adjacent pairs of
// plain-letter words as Latin binomials: genus capitalized, species kept
// lower (ENTEROCOCCUS FAECALIS -> Enterococcus faecalis).
func ObsLine(val string) string {
	s := strings.TrimSpace(val)
	if s == "" || !isAllUpper(s) {
		return val
	}
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		w := words[i]
		lower := strings.ToLower(w)
		if lettersOnly(w) && !lowerWords[lower] && i+1 < len(words) {
			next := words[i+1]
			nextLower := strings.ToLower(next)
			if lettersOnly(next) && !lowerWords[nextLower] {
				out = append(out, capitalize(lower), nextLower)
				i += 2
				continue
			}
		}
		if lowerWords[lower] {
			out = append(out, lower)
		} else {
			out = append(out, capitalize(lower))
		}
		i++
	}
	return strings.Join(out, " ")
}

// SiglaUpper upper-cases short device/focus acronyms (CVC, SVD, ITU, PAV).
// Anything that is not 2-5 letters passes through unchanged.
func SiglaUpper(val string) string {
	s := strings.TrimSpace(val)
	if len([]rune(s)) < 2 || len([]rune(s)) > 5 {
		return val
	}
	for _, c := range s {
		if c != ' ' && !unicode.IsLetter(c) {
			return val
		}
	}
	return strings.ToUpper(s)
}

// ParseDateBR parses DD/MM/YYYY or DD/MM/YY.
func ParseDateBR(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"02/01/2006", "02/01/06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns "{n} dias" for a strictly positive difference
// between two DD/MM/YYYY dates, and "" for anything else (same day,
// negative, unparseable).
func DaysBetween(start, end string) string {
	d1, ok1 := ParseDateBR(start)
	d2, ok2 := ParseDateBR(end)
	if !ok1 || !ok2 {
		return ""
	}
	days := int(d2.Sub(d1).Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%d dias", days)
	}
	return ""
}

// JoinE joins non-empty items with commas and Portuguese "e" before the
// last one: [manhã tarde noite] -> "manhã, tarde e noite".
func JoinE(items []string) string {
	var kept []string
	for _, it := range items {
		if it != "" {
			kept = append(kept, it)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	}
	return strings.Join(kept[:len(kept)-1], ", ") + " e " + kept[len(kept)-1]
}

// StripSlashes removes bar artifacts from trend values (3/ -> 3,
// 22/00/0 -> 22000). Returns "" when nothing is left.
func StripSlashes(val string) string {
	return strings.TrimSpace(strings.ReplaceAll(val, "/", ""))
}
