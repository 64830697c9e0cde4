package services

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatBRL formats an amount in Brazilian Real notation: dot thousands
// separator, comma decimals and exactly 2 decimal places (e.g. R$ 1.234,56).
func FormatBRL(amount float64) string {
	if amount < 0 {
		return "-R$ " + humanize.FormatFloat("#.###,##", -amount)
	}
	return "R$ " + humanize.FormatFloat("#.###,##", amount)
}

// FormatHectares formats an area with 4 decimal places (e.g. 1.250,0000).
func FormatHectares(hectares float64) string {
	return humanize.FormatFloat("#.###,####", hectares)
}

// FormatDecimal prints a value with as many decimals as it needs, using a
// comma as decimal separator. Used for the dimensions the user typed.
func FormatDecimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// FormatDimensions renders width and length as "10,5m x 1000m".
func FormatDimensions(width, length float64) string {
	return FormatDecimal(width) + "m x " + FormatDecimal(length) + "m"
}
