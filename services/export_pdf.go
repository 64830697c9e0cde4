package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Vertical layout of the report, in millimeters. Rows are paginated so that
// the content of a page never exceeds pageContentLimit.
const (
	pageContentLimit   = 250.0
	titleRowHeight     = 12.0
	dateRowHeight      = 8.0
	headerSpacerHeight = 4.0
	tableHeaderHeight  = 8.0
	dataRowHeight      = 8.0
	footerRowHeight    = 8.0

	reportHeaderHeight = titleRowHeight + dateRowHeight + headerSpacerHeight
)

const pageNumberPattern = "Página {current} de {total}"

// GeneratePDF creates the pricing report using maroto/v2 and returns the raw
// PDF bytes. It returns ErrEmptyReport when there are no rows.
func GeneratePDF(data ExportData) ([]byte, error) {
	m, err := buildReport(data)
	if err != nil {
		return nil, err
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// buildReport lays out the report pages without rendering them.
func buildReport(data ExportData) (core.Maroto, error) {
	if len(data.Rows) == 0 {
		return nil, ErrEmptyReport
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: pageNumberPattern,
			Place:   props.LeftBottom,
			Size:    9,
			Color:   &props.Color{Red: 150, Green: 150, Blue: 150},
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(footerRow(data.ProductLabel)); err != nil {
		return nil, fmt.Errorf("failed to register footer: %w", err)
	}

	for i, pageRows := range paginateRows(data.Rows) {
		p := page.New()
		if i == 0 {
			p.Add(reportHeaderRows(data)...)
		}
		p.Add(tableHeaderRow())
		for j, r := range pageRows {
			p.Add(tableRow(r, j%2 == 1))
		}
		m.AddPages(p)
	}

	return m, nil
}

// paginateRows splits rows into pages. The first page also carries the
// report header; every page carries the table header.
func paginateRows(rows []ExportRow) [][]ExportRow {
	var pages [][]ExportRow
	var current []ExportRow
	used := reportHeaderHeight + tableHeaderHeight

	for _, r := range rows {
		if used+dataRowHeight > pageContentLimit {
			pages = append(pages, current)
			current = nil
			used = tableHeaderHeight
		}
		current = append(current, r)
		used += dataRowHeight
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}

// reportHeaderRows returns the title and generation date rows.
func reportHeaderRows(data ExportData) []core.Row {
	return []core.Row{
		row.New(titleRowHeight).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 18, Green: 25, Blue: 38},
				}),
			),
		),
		row.New(dateRowHeight).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Gerado em: %s", data.GeneratedDate()), props.Text{
					Size:  10,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
		row.New(headerSpacerHeight),
	}
}

// tableHeaderRow returns the column header row.
func tableHeaderRow() core.Row {
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 230, Green: 230, Blue: 230}}
	headerText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Top:   1.5,
		Align: align.Left,
		Color: &props.Color{Red: 18, Green: 25, Blue: 38},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	return row.New(tableHeaderHeight).Add(
		col.New(4).Add(text.New("Nome", headerText)).WithStyle(headerCell),
		col.New(3).Add(text.New("Dimensões (m)", headerText)).WithStyle(headerCell),
		col.New(2).Add(text.New("Área (ha)", headerTextRight)).WithStyle(headerCell),
		col.New(3).Add(text.New("Valor Total (R$)", headerTextRight)).WithStyle(headerCell),
	)
}

// tableRow returns a data row. Odd rows get a light background.
func tableRow(r ExportRow, shaded bool) core.Row {
	baseText := props.Text{
		Size:  9,
		Top:   2,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 33, Blue: 33},
	}
	rightText := baseText
	rightText.Align = align.Right

	colName := col.New(4).Add(text.New(r.Name, baseText))
	colDims := col.New(3).Add(text.New(FormatDimensions(r.Width, r.Length), baseText))
	colArea := col.New(2).Add(text.New(FormatHectares(r.Hectares), rightText))
	colTotal := col.New(3).Add(text.New(FormatBRL(r.TotalPrice), rightText))

	if shaded {
		cellStyle := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
		colName = colName.WithStyle(cellStyle)
		colDims = colDims.WithStyle(cellStyle)
		colArea = colArea.WithStyle(cellStyle)
		colTotal = colTotal.WithStyle(cellStyle)
	}

	return row.New(dataRowHeight).Add(colName, colDims, colArea, colTotal)
}

// footerRow carries the product label; the page number is drawn by maroto.
func footerRow(label string) core.Row {
	return row.New(footerRowHeight).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Size:  9,
				Top:   3,
				Align: align.Right,
				Color: &props.Color{Red: 150, Green: 150, Blue: 150},
			}),
		),
	)
}
