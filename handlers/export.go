package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"hectarepricer/services"
)

// exportFormat describes one downloadable rendition of the ledger.
type exportFormat struct {
	name        string
	extension   string
	contentType string
	generate    func(services.ExportData) ([]byte, error)
}

var (
	pdfExport = exportFormat{
		name:        "export_pdf",
		extension:   "pdf",
		contentType: "application/pdf",
		generate:    services.GeneratePDF,
	}
	excelExport = exportFormat{
		name:        "export_excel",
		extension:   "xlsx",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		generate:    services.GenerateExcel,
	}
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// HandleExportPDF returns a handler that downloads the session ledger as PDF.
func HandleExportPDF(cfg services.ReportConfig) func(*core.RequestEvent) error {
	return handleExport(cfg, pdfExport)
}

// HandleExportExcel returns a handler that downloads the session ledger as a
// spreadsheet.
func HandleExportExcel(cfg services.ReportConfig) func(*core.RequestEvent) error {
	return handleExport(cfg, excelExport)
}

// handleExport snapshots the ledger and streams the generated file. An empty
// ledger produces no document: the response is 204 with an info toast.
func handleExport(cfg services.ReportConfig, format exportFormat) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			return ErrorToast(e, http.StatusInternalServerError, "Sessão indisponível. Recarregue a página.")
		}

		data := services.BuildExportData(sess.Ledger.List(), cfg, now())

		fileBytes, err := format.generate(data)
		if errors.Is(err, services.ErrEmptyReport) {
			SetToast(e, ToastInfo, "Adicione precificações antes de exportar")
			return e.NoContent(http.StatusNoContent)
		}
		if err != nil {
			log.Printf("%s: failed to generate: %v", format.name, err)
			return ErrorToast(e, http.StatusInternalServerError, "Falha ao gerar o arquivo")
		}

		filename := fmt.Sprintf("%s.%s", sanitizeFilename(cfg.FileBaseName), format.extension)

		e.Response.Header().Set("Content-Type", format.contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(fileBytes)
		return nil
	}
}
