package engine

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	millionThreshold = 1_000_000
	billionThreshold = 1_000_000_000
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n rounded to an integer with thousand separators,
// switching to "~X.X million" / "~X.X billion" for large values.
func FormatCount(n float64) string {
	switch {
	case n >= billionThreshold:
		return fmt.Sprintf("~%.1f billion", n/billionThreshold)
	case n >= millionThreshold:
		return fmt.Sprintf("~%.1f million", n/millionThreshold)
	}
	return printer.Sprintf("%d", int64(math.Round(n)))
}

// FormatTonnes renders a tonnes value with two decimals and thousand
// separators, e.g. 1234.567 -> "1,234.57".
func FormatTonnes(t float64) string {
	return printer.Sprintf("%.2f", t)
}
