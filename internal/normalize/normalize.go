// Package normalize converts loosely-formatted date and amount cells into
// their canonical stored forms.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/model"
)

// dayFirstPattern matches DD/MM/YYYY and DD-MM-YYYY with 1-2 digit day and
// month. The first group is ALWAYS treated as the day: US-style MM/DD input
// is silently misread. Preserved on purpose so existing imports keep their
// meaning.
var dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

// fallbackLayouts are tried, in order, when the day-first pattern does not
// match. Canonical form first.
var fallbackLayouts = []string{
	model.DateFormat,
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
}

// ParseDate parses a raw date cell and returns it as YYYY-MM-DD. Date-only
// UTC semantics: no time of day survives, no timezone shift. Returns false
// for anything that is not a real calendar date.
func ParseDate(v model.Value) (string, bool) {
	if v.Numeric {
		return "", false
	}
	in := strings.TrimSpace(v.Str)
	if in == "" {
		return "", false
	}

	if m := dayFirstPattern.FindStringSubmatch(in); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return calendarDate(year, month, day)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			// Keep the calendar date as written: converting a
			// timestamped input to UTC could roll it across midnight.
			return t.Format(model.DateFormat), true
		}
	}
	return "", false
}

// calendarDate rejects impossible dates like 31/02 that time.Date would
// otherwise normalize into the next month.
func calendarDate(year, month, day int) (string, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(model.DateFormat), true
}

// currencySymbols is the fixed set of symbols stripped before amount parsing.
var currencySymbols = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", "₹", "", "₽", "",
)

// ParseAmount parses a raw amount cell into a decimal with 2 fractional
// digits, rounded half away from zero. Currency symbols, whitespace and
// thousands grouping are stripped first. Negative amounts parse fine here;
// rejecting them is the row processor's rule, not this one's.
//
// Comma handling: a lone comma is taken as the decimal separator ("12,50"),
// commas next to a dot are taken as grouping ("1,234.56"). The European form
// "1.234,56" that uses both the other way around is NOT disambiguated and
// parses wrong. Known limitation, kept as-is.
func ParseAmount(v model.Value) (decimal.Decimal, bool) {
	if v.Numeric {
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v.Num).Round(2), true
	}

	s := currencySymbols.Replace(strings.TrimSpace(v.Str))
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return decimal.Decimal{}, false
	}

	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") == 1:
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Round(2), true
}
