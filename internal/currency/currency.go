// Package currency formats amounts as Indonesian Rupiah for receipts and
// report payloads.
package currency

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount as "Rp. 12.000". Amounts are rounded to whole
// rupiah; negative or NaN input renders as zero.
func Format(amount float64) string {
	return "Rp. " + FormatPlain(amount)
}

// FormatPlain renders the grouped number without the currency symbol.
func FormatPlain(amount float64) string {
	if math.IsNaN(amount) || amount < 0 {
		amount = 0
	}
	return printer.Sprintf("%d", int64(math.Round(amount)))
}

// Parse reads a formatted rupiah string back into a number. The symbol,
// spaces and thousands dots are stripped and a decimal comma becomes a
// decimal point. Unparseable input yields 0; Parse never fails.
func Parse(s string) float64 {
	cleaned := strings.ReplaceAll(s, "Rp.", "")
	cleaned = strings.ReplaceAll(cleaned, "Rp", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
