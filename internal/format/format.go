// Package format turns raw engine numbers into display strings.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cloud-ru/npv-dashboard/pkg/utils"
)

// Formatter formats amounts for one display locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for the given locale and currency symbol.
func New(tag language.Tag, symbol string) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Default formats US dollars with English digit grouping.
func Default() *Formatter {
	return New(language.English, "$")
}

// Currency renders whole currency units: -200000.4 -> "-$200,000".
func (f *Formatter) Currency(amount float64) string {
	// остаемся во float64: суммы за пределами int64 печатаются без переполнения
	whole := utils.RoundWhole(amount)
	digits := f.printer.Sprintf("%.0f", math.Abs(whole))
	if whole < 0 {
		return "-" + f.symbol + digits
	}
	return f.symbol + digits
}

// Percent renders a percentage value with two decimals: 19.711 -> "19.71%".
func (f *Formatter) Percent(percent float64) string {
	return f.printer.Sprintf("%.2f%%", utils.Round2(percent))
}

// Rate renders a fractional rate as a percentage: 0.12 -> "12.00%".
func (f *Formatter) Rate(rate float64) string {
	return f.Percent(rate * 100)
}
