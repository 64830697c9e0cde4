// Package templates renders the calculator pages as templ components.
// The *_templ.go files are generated from the .templ sources with
// `templ generate`.
package templates

import "hectarepricer/services"

// CalculatorPageData is everything the calculator screen shows.
type CalculatorPageData struct {
	Form         services.PricingForm
	Records      []services.PricingRecord
	Totals       services.LedgerTotals
	ProductLabel string
	Year         int
}

// ResultsData feeds the results panel.
type ResultsData struct {
	Records []services.PricingRecord
	Totals  services.LedgerTotals
}

func (d CalculatorPageData) Results() ResultsData {
	return ResultsData{Records: d.Records, Totals: d.Totals}
}

type formField struct {
	id          string
	label       string
	placeholder string
	inputMode   string
	value       string
}
