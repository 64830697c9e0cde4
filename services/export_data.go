package services

import (
	"errors"
	"time"

	"github.com/samber/lo"
)

// ErrEmptyReport is returned by the exporters when there is nothing to export.
var ErrEmptyReport = errors.New("no pricing records to export")

// ReportConfig holds the fixed labels of the exported documents.
type ReportConfig struct {
	Title        string
	ProductLabel string
	FileBaseName string
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Title:        "Relatório de Precificação de Hectares",
		ProductLabel: "Hectare Hero Pricer",
		FileBaseName: "tabela-de-precos",
	}
}

// ExportRow represents a single pricing record in an export.
type ExportRow struct {
	Name            string
	Width           float64
	Length          float64
	PricePerHectare float64
	Hectares        float64
	TotalPrice      float64
}

// ExportData holds all data needed for export.
type ExportData struct {
	Title        string
	ProductLabel string
	GeneratedAt  time.Time
	Rows         []ExportRow
	Totals       LedgerTotals
}

// GeneratedDate is the generation date in pt-BR notation.
func (d ExportData) GeneratedDate() string {
	return d.GeneratedAt.Format("02/01/2006")
}

// BuildExportData snapshots the records, in the order given, into export rows.
func BuildExportData(records []PricingRecord, cfg ReportConfig, generatedAt time.Time) ExportData {
	return ExportData{
		Title:        cfg.Title,
		ProductLabel: cfg.ProductLabel,
		GeneratedAt:  generatedAt,
		Rows: lo.Map(records, func(r PricingRecord, _ int) ExportRow {
			return ExportRow{
				Name:            r.Name,
				Width:           r.Width,
				Length:          r.Length,
				PricePerHectare: r.PricePerHectare,
				Hectares:        r.Hectares,
				TotalPrice:      r.TotalPrice,
			}
		}),
		Totals: CalcLedgerTotals(records),
	}
}
