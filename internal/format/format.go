// Package format renders grosz amounts for humans.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Polish)

// Grosz renders a minor-unit amount as a Polish-locale PLN string,
// e.g. 1234567 -> "12 345,67 zł".
func Grosz(amount int64) string {
	return printer.Sprintf("%.2f zł", float64(amount)/100.0)
}

// Percent renders a ratio such as 0.1666 as "16,66%".
func Percent(rate float64) string {
	return printer.Sprintf("%.2f%%", rate*100)
}
