package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders dollars with thousands separators, e.g. "$2,695.50".
func FormatCurrency(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

func FormatPayback(years *float64, placeholder string) string {
	if years == nil {
		return placeholder
	}
	return printer.Sprintf("%.1f years", *years)
}
