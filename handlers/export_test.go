package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"hectarepricer/services"
	"hectarepricer/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"default name", "tabela-de-precos", "tabela-de-precos"},
		{"spaces to hyphens", "Tabela de Precos", "Tabela-de-Precos"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"colons", "file:name", "file-name"},
		{"quotes dropped", `a"b`, "ab"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

var exportHandlers = []struct {
	name        string
	handler     func(services.ReportConfig) func(*core.RequestEvent) error
	contentType string
	filename    string
}{
	{"pdf", HandleExportPDF, "application/pdf", "tabela-de-precos.pdf"},
	{"excel", HandleExportExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "tabela-de-precos.xlsx"},
}

func TestHandleExport_EmptyLedger(t *testing.T) {
	for _, tt := range exportHandlers {
		t.Run(tt.name, func(t *testing.T) {
			_, sess := newTestSession()
			handler := tt.handler(services.DefaultReportConfig())

			req := WithSession(httptest.NewRequest(http.MethodGet, "/export/"+tt.name, nil), sess)
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if rec.Code != http.StatusNoContent {
				t.Errorf("expected status 204, got %d", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("expected empty body, got %d bytes", rec.Body.Len())
			}
			if rec.Header().Get("Content-Disposition") != "" {
				t.Error("expected no attachment for empty ledger")
			}
			if !strings.Contains(rec.Header().Get("HX-Trigger"), "showToast") {
				t.Error("expected info toast")
			}
		})
	}
}

func TestHandleExport_WithRecords(t *testing.T) {
	for _, tt := range exportHandlers {
		t.Run(tt.name, func(t *testing.T) {
			_, sess := newTestSession()
			testhelpers.AddTestPricing(t, sess.Ledger, "FIRST TEST", "100", "10", "1000")
			testhelpers.AddTestPricing(t, sess.Ledger, "SECOND TEST", "200", "10,5", "1000")
			handler := tt.handler(services.DefaultReportConfig())

			req := WithSession(httptest.NewRequest(http.MethodGet, "/export/"+tt.name, nil), sess)
			rec := httptest.NewRecorder()

			if err := handler(newTestRequestEvent(req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			wantDisposition := fmt.Sprintf(`attachment; filename="%s"`, tt.filename)
			if cd := rec.Header().Get("Content-Disposition"); cd != wantDisposition {
				t.Errorf("Content-Disposition = %q, want %q", cd, wantDisposition)
			}
			if rec.Body.Len() == 0 {
				t.Error("expected file body")
			}
			if sess.Ledger.Len() != 2 {
				t.Errorf("export changed the ledger: %d records", sess.Ledger.Len())
			}
		})
	}
}

func TestHandleExportPDF_Header(t *testing.T) {
	_, sess := newTestSession()
	testhelpers.AddTestPricing(t, sess.Ledger, "TEST", "100", "10", "1000")
	handler := HandleExportPDF(services.DefaultReportConfig())

	req := WithSession(httptest.NewRequest(http.MethodGet, "/export/pdf", nil), sess)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("response is not a PDF document")
	}
}
