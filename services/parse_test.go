package services

import (
	"errors"
	"testing"
)

func TestParsePositiveNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{"integer", "100", 100, nil},
		{"dot decimal", "10.5", 10.5, nil},
		{"comma decimal", "10,5", 10.5, nil},
		{"leading zeros", "007", 7, nil},
		{"small fraction", "0,01", 0.01, nil},
		{"empty", "", 0, ErrRequired},
		{"letters", "abc", 0, ErrNotANumber},
		{"trailing separator", "10.", 0, ErrNotANumber},
		{"leading separator", ".5", 0, ErrNotANumber},
		{"two separators", "1.000,50", 0, ErrNotANumber},
		{"two commas", "1,2,3", 0, ErrNotANumber},
		{"spaces", " 10", 0, ErrNotANumber},
		{"plus sign", "+10", 0, ErrNotANumber},
		{"exponent", "1e3", 0, ErrNotANumber},
		{"zero", "0", 0, ErrNotPositive},
		{"zero decimal", "0,00", 0, ErrNotPositive},
		{"negative zero", "-0", 0, ErrNotPositive},
		{"negative", "-5", 0, ErrNotPositive},
		{"negative decimal", "-2,5", 0, ErrNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePositiveNumber("width", tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePositiveNumber(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				var fe *FieldError
				if !errors.As(err, &fe) || fe.Field != "width" {
					t.Errorf("expected FieldError for field width, got %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePositiveNumber(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePositiveNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePositiveNumber_Overflow(t *testing.T) {
	huge := "1"
	for i := 0; i < 400; i++ {
		huge += "0"
	}
	if _, err := ParsePositiveNumber("price", huge); !errors.Is(err, ErrNotANumber) {
		t.Errorf("expected ErrNotANumber for out-of-range input, got %v", err)
	}
}

func TestParseName(t *testing.T) {
	if _, err := ParseName("name", ""); !errors.Is(err, ErrRequired) {
		t.Errorf("expected ErrRequired for empty name, got %v", err)
	}
	got, err := ParseName("name", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "123" {
		t.Errorf("ParseName() = %q, want %q", got, "123")
	}
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&FieldError{Field: "name", Err: ErrRequired}, "Este campo é obrigatório"},
		{&FieldError{Field: "width", Err: ErrNotANumber}, "Este campo deve receber um número"},
		{&FieldError{Field: "length", Err: ErrNotPositive}, "O valor deve ser maior que zero"},
		{errors.New("boom"), "Valor inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ValidationMessage(tt.err); got != tt.want {
				t.Errorf("ValidationMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
