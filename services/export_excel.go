package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates a spreadsheet with the same rows as the PDF report and
// returns the file contents. It returns ErrEmptyReport when there are no rows.
func GenerateExcel(data ExportData) ([]byte, error) {
	if len(data.Rows) == 0 {
		return nil, ErrEmptyReport
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Precificações"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through F).
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{32, 14, 14, 20, 14, 20}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11, Color: "#646464"},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#0369A1"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	// Built-in number format 4 is "#,##0.00".
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	areaFmt := "#,##0.0000"
	areaStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &areaFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create area style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryAreaStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &areaFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary area style: %w", err)
	}

	summaryMoneyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary money style: %w", err)
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Gerado em: "+data.GeneratedDate())
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	headers := []string{"Nome", "Largura (m)", "Comprimento (m)", "Preço por Hectare (R$)", "Área (ha)", "Valor Total (R$)"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, "B"+rowStr, r.Width)
		f.SetCellValue(sheetName, "C"+rowStr, r.Length)
		f.SetCellValue(sheetName, "D"+rowStr, r.PricePerHectare)
		f.SetCellValue(sheetName, "E"+rowStr, r.Hectares)
		f.SetCellValue(sheetName, "F"+rowStr, r.TotalPrice)

		f.SetCellStyle(sheetName, "A"+rowStr, "C"+rowStr, textStyle)
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, moneyStyle)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, areaStyle)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, moneyStyle)

		row++
	}

	// ── Summary Row ─────────────────────────────────────────────────────

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+summaryRow, "Total:")
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "E"+summaryRow, data.Totals.Hectares)
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryAreaStyle)
	f.SetCellValue(sheetName, "F"+summaryRow, data.Totals.TotalPrice)
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryMoneyStyle)

	// ── Footer ──────────────────────────────────────────────────────────

	row += 2
	footerRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "A"+footerRow, sanitizeExcelCell(data.ProductLabel))
	f.SetCellStyle(sheetName, "A"+footerRow, "A"+footerRow, subtitleStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
