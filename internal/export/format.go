package export

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes numbers with thousands separators for report cells.
var printer = message.NewPrinter(language.English)

// FormatCurrency renders a dollar amount for display cells, e.g. "$1,250,000".
func FormatCurrency(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

// FormatScore renders a 0-100 score with two decimals.
func FormatScore(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatPercent renders a percentage with one decimal, e.g. "12.5%".
func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}
