package services

import "testing"

func TestFormatBRL_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "R$ 0,00"},
		{"small integer", 5, "R$ 5,00"},
		{"with decimals", 42.5, "R$ 42,50"},
		{"hundreds", 999.99, "R$ 999,99"},
		{"thousands", 1234.56, "R$ 1.234,56"},
		{"millions", 21000000, "R$ 21.000.000,00"},
		{"rounds half cents", 250.049, "R$ 250,05"},
		{"negative", -100, "-R$ 100,00"},
		{"exact thousands boundary", 1000, "R$ 1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(tt.input)
			if got != tt.expect {
				t.Errorf("FormatBRL(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatHectares(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{1, "1,0000"},
		{0.021, "0,0210"},
		{1250, "1.250,0000"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			if got := FormatHectares(tt.input); got != tt.expect {
				t.Errorf("FormatHectares(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		length float64
		expect string
	}{
		{"integers", 10, 1000, "10m x 1000m"},
		{"decimals", 10.5, 20.25, "10,5m x 20,25m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDimensions(tt.width, tt.length); got != tt.expect {
				t.Errorf("FormatDimensions(%v, %v) = %q, want %q", tt.width, tt.length, got, tt.expect)
			}
		})
	}
}
