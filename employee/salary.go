package employee

import (
	"math"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// salaryFractionDigits matches the default of Number.toLocaleString.
const salaryFractionDigits = 3

var salaryPrinter atomic.Pointer[message.Printer]

func init() {
	salaryPrinter.Store(message.NewPrinter(language.AmericanEnglish))
}

// SetLocale switches the grouping convention used by FormatSalary.
func SetLocale(tag language.Tag) {
	salaryPrinter.Store(message.NewPrinter(tag))
}

// ParseLocale accepts both BCP 47 tags (en-US) and POSIX locale names
// (en_US.UTF-8). C and POSIX map to American English.
func ParseLocale(name string) (language.Tag, error) {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "C" || name == "POSIX" {
		return language.AmericanEnglish, nil
	}
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

// HostLocale reads the numeric locale of the process environment.
func HostLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if tag, err := ParseLocale(value); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}

// FormatSalary prefixes the grouped amount with "$": 125000 -> "$125,000".
func FormatSalary(value float64) string {
	return formatSalary(salaryPrinter.Load(), value)
}

// FormatSalaryIn formats with an explicit locale instead of the active one.
func FormatSalaryIn(tag language.Tag, value float64) string {
	return formatSalary(message.NewPrinter(tag), value)
}

func formatSalary(p *message.Printer, value float64) string {
	switch {
	case math.IsNaN(value):
		return "$NaN"
	case math.IsInf(value, 1):
		return "$∞"
	case math.IsInf(value, -1):
		return "$-∞"
	}
	return "$" + p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(salaryFractionDigits)))
}
