package services

import "testing"

func TestPricingForm_ValidateAllEmpty(t *testing.T) {
	f := PricingForm{}
	if _, ok := f.Validate(); ok {
		t.Fatal("expected validation to fail for empty form")
	}

	for _, field := range []string{FieldName, FieldPricePerHectare, FieldWidth, FieldLength} {
		if !f.HasError(field) {
			t.Errorf("expected field %q to be invalid", field)
		}
		if f.Errors[field] != "Este campo é obrigatório" {
			t.Errorf("field %q message = %q", field, f.Errors[field])
		}
	}
}

func TestPricingForm_ValidateMessages(t *testing.T) {
	f := PricingForm{Name: "Lote", PricePerHectare: "abc", Width: "0", Length: "10,5"}
	in, ok := f.Validate()
	if ok {
		t.Fatal("expected validation to fail")
	}

	if f.HasError(FieldName) || f.HasError(FieldLength) {
		t.Errorf("unexpected errors: %v", f.Errors)
	}
	if f.Errors[FieldPricePerHectare] != "Este campo deve receber um número" {
		t.Errorf("price message = %q", f.Errors[FieldPricePerHectare])
	}
	if f.Errors[FieldWidth] != "O valor deve ser maior que zero" {
		t.Errorf("width message = %q", f.Errors[FieldWidth])
	}
	if in.Length != 10.5 {
		t.Errorf("length = %v, want 10.5", in.Length)
	}
}

func TestPricingForm_SubmitEmptyLeavesLedgerUntouched(t *testing.T) {
	ledger := NewLedger()
	f := PricingForm{}

	_, ok, err := f.Submit(ledger)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if ok {
		t.Fatal("expected submit to fail")
	}
	if !ledger.IsEmpty() {
		t.Errorf("ledger should be empty, has %d records", ledger.Len())
	}
	if len(f.Errors) != 4 {
		t.Errorf("expected 4 field errors, got %v", f.Errors)
	}
}

func TestPricingForm_SubmitResetsButKeepsPrice(t *testing.T) {
	ledger := NewLedger()
	f := PricingForm{Name: "TEST", PricePerHectare: "100", Width: "10", Length: "1000"}

	rec, ok, err := f.Submit(ledger)
	if err != nil || !ok {
		t.Fatalf("Submit() = ok %v, err %v", ok, err)
	}
	if rec.Hectares != 1 || rec.TotalPrice != 100 {
		t.Errorf("record = %+v, want hectares 1 and total 100", rec)
	}

	if f.Name != "" || f.Width != "" || f.Length != "" {
		t.Errorf("expected name/width/length cleared, got %+v", f)
	}
	if f.PricePerHectare != "100" {
		t.Errorf("PricePerHectare = %q, want %q", f.PricePerHectare, "100")
	}

	// Second entry only retypes name and dimensions.
	f.Name = "SECOND"
	f.Width = "20"
	f.Length = "500"
	second, ok, err := f.Submit(ledger)
	if err != nil || !ok {
		t.Fatalf("second Submit() = ok %v, err %v", ok, err)
	}
	if second.PricePerHectare != 100 {
		t.Errorf("second record price = %v, want 100", second.PricePerHectare)
	}

	list := ledger.List()
	if len(list) != 2 || list[0].Name != "SECOND" || list[1].Name != "TEST" {
		t.Errorf("ledger order = %+v", list)
	}
}

func TestPricingForm_SubmitCommaDecimals(t *testing.T) {
	ledger := NewLedger()
	f := PricingForm{Name: "Sítio", PricePerHectare: "1500,50", Width: "12,5", Length: "80"}

	rec, ok, err := f.Submit(ledger)
	if err != nil || !ok {
		t.Fatalf("Submit() = ok %v, err %v, errors %v", ok, err, f.Errors)
	}
	if rec.Width != 12.5 || rec.PricePerHectare != 1500.5 {
		t.Errorf("parsed values = %+v", rec)
	}
}
