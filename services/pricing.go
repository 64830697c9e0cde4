// Package services provides parsing, pricing and export functions for
// hectare pricing records.
package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// SquareMetersPerHectare converts square meters to hectares.
const SquareMetersPerHectare = 10000

// ErrInvalidDimensions is returned when width or length is not a number.
var ErrInvalidDimensions = errors.New("width and length must be numbers")

// PricingRecord is an immutable computed pricing entry. Width and Length are
// in meters, Hectares and TotalPrice are derived at creation.
type PricingRecord struct {
	ID              string
	Name            string
	PricePerHectare float64
	Width           float64
	Length          float64
	Hectares        float64
	TotalPrice      float64
}

// PricingInput holds validated form values.
type PricingInput struct {
	Name            string
	PricePerHectare float64
	Width           float64
	Length          float64
}

// newRecordID returns a time-ordered unique identifier.
var newRecordID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

// CalcHectares converts a width x length rectangle in meters to hectares.
func CalcHectares(width, length float64) float64 {
	return (width * length) / SquareMetersPerHectare
}

// CalcTotalPrice is the price of the given area.
func CalcTotalPrice(hectares, pricePerHectare float64) float64 {
	return hectares * pricePerHectare
}

// ComputePricing builds a new record from validated input. It does not touch
// any ledger.
func ComputePricing(in PricingInput) (PricingRecord, error) {
	if math.IsNaN(in.Width) || math.IsNaN(in.Length) {
		return PricingRecord{}, ErrInvalidDimensions
	}

	hectares := CalcHectares(in.Width, in.Length)
	return PricingRecord{
		ID:              newRecordID(),
		Name:            in.Name,
		PricePerHectare: in.PricePerHectare,
		Width:           in.Width,
		Length:          in.Length,
		Hectares:        hectares,
		TotalPrice:      CalcTotalPrice(hectares, in.PricePerHectare),
	}, nil
}

// LedgerTotals aggregates all records of a ledger.
type LedgerTotals struct {
	Count      int
	Hectares   float64
	TotalPrice float64
}

// CalcLedgerTotals sums area and price over records.
func CalcLedgerTotals(records []PricingRecord) LedgerTotals {
	totals := LedgerTotals{Count: len(records)}
	for _, r := range records {
		totals.Hectares += r.Hectares
		totals.TotalPrice += r.TotalPrice
	}
	return totals
}
