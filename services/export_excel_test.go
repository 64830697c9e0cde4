package services

import (
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateExcel_Basic(t *testing.T) {
	data := ExportData{
		Title:        "Relatório de Precificação de Hectares",
		ProductLabel: "Hectare Hero Pricer",
		GeneratedAt:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Rows: []ExportRow{
			{Name: "Second", Width: 20, Length: 500, PricePerHectare: 200, Hectares: 1, TotalPrice: 200},
			{Name: "First", Width: 10, Length: 1000, PricePerHectare: 100, Hectares: 1, TotalPrice: 100},
		},
		Totals: LedgerTotals{Count: 2, Hectares: 2, TotalPrice: 300},
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Precificações" {
		t.Fatalf("expected sheet name 'Precificações', got %v", sheets)
	}
	sheet := sheets[0]

	title, _ := f.GetCellValue(sheet, "A1")
	if title != data.Title {
		t.Errorf("expected title %q, got %q", data.Title, title)
	}
	date, _ := f.GetCellValue(sheet, "A2")
	if date != "Gerado em: 15/01/2025" {
		t.Errorf("date cell = %q", date)
	}
	header, _ := f.GetCellValue(sheet, "A4")
	if header != "Nome" {
		t.Errorf("header A4 = %q, want Nome", header)
	}

	// Rows keep ledger order.
	first, _ := f.GetCellValue(sheet, "A5")
	second, _ := f.GetCellValue(sheet, "A6")
	if first != "Second" || second != "First" {
		t.Errorf("row order = %q, %q", first, second)
	}

	total, _ := f.GetCellValue(sheet, "F8", excelize.Options{RawCellValue: true})
	if total != "300" {
		t.Errorf("total cell = %q, want 300", total)
	}
}

func TestGenerateExcel_EmptyProducesNothing(t *testing.T) {
	result, err := GenerateExcel(ExportData{Title: "Empty"})
	if !errors.Is(err, ErrEmptyReport) {
		t.Fatalf("expected ErrEmptyReport, got %v", err)
	}
	if result != nil {
		t.Errorf("expected no file, got %d bytes", len(result))
	}
}

func TestGenerateExcel_SanitizesNames(t *testing.T) {
	data := ExportData{
		Title:       "Report",
		GeneratedAt: time.Now(),
		Rows: []ExportRow{
			{Name: "=HYPERLINK(\"http://evil\")", Width: 1, Length: 1, PricePerHectare: 1, Hectares: 0.0001, TotalPrice: 0.0001},
		},
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue(f.GetSheetList()[0], "A5")
	if name != "'=HYPERLINK(\"http://evil\")" {
		t.Errorf("name cell = %q, expected quote prefix", name)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Lote 1", "Lote 1"},
		{"=1+1", "'=1+1"},
		{"+55", "'+55"},
		{"-10", "'-10"},
		{"@SUM", "'@SUM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
