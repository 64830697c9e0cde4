package services

import "errors"

// Form field keys, shared by handlers and templates.
const (
	FieldName            = "name"
	FieldPricePerHectare = "pricePerHectare"
	FieldWidth           = "width"
	FieldLength          = "length"
)

// PricingForm holds the raw field values of the calculator form and the
// per-field error messages of the last validation.
type PricingForm struct {
	Name            string
	PricePerHectare string
	Width           string
	Length          string
	Errors          map[string]string
}

// Validate checks every field and records one message per invalid field.
// The returned input is only meaningful when ok is true.
func (f *PricingForm) Validate() (PricingInput, bool) {
	f.Errors = make(map[string]string)

	var in PricingInput
	var err error

	if in.Name, err = ParseName(FieldName, f.Name); err != nil {
		f.setError(err)
	}
	if in.PricePerHectare, err = ParsePositiveNumber(FieldPricePerHectare, f.PricePerHectare); err != nil {
		f.setError(err)
	}
	if in.Width, err = ParsePositiveNumber(FieldWidth, f.Width); err != nil {
		f.setError(err)
	}
	if in.Length, err = ParsePositiveNumber(FieldLength, f.Length); err != nil {
		f.setError(err)
	}

	return in, len(f.Errors) == 0
}

func (f *PricingForm) setError(err error) {
	var fe *FieldError
	if errors.As(err, &fe) {
		f.Errors[fe.Field] = ValidationMessage(err)
	}
}

// HasError reports whether the field failed the last validation.
func (f PricingForm) HasError(field string) bool {
	_, ok := f.Errors[field]
	return ok
}

// Reset clears the form after a successful submit. The price per hectare is
// kept since consecutive entries usually share it.
func (f *PricingForm) Reset() {
	f.Name = ""
	f.Width = ""
	f.Length = ""
	f.Errors = make(map[string]string)
}

// Submit validates the form, computes a record and adds it to the ledger.
// On validation failure the ledger is left untouched and ok is false.
func (f *PricingForm) Submit(ledger *Ledger) (PricingRecord, bool, error) {
	in, ok := f.Validate()
	if !ok {
		return PricingRecord{}, false, nil
	}

	record, err := ComputePricing(in)
	if err != nil {
		return PricingRecord{}, false, err
	}

	ledger.Add(record)
	f.Reset()
	return record, true, nil
}
