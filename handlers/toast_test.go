package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func parseToast(t *testing.T, header string) map[string]string {
	t.Helper()

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Types(t *testing.T) {
	tests := []struct {
		toastType string
		message   string
	}{
		{ToastSuccess, "TEST adicionado: R$ 100,00"},
		{ToastWarning, "Corrija os campos destacados"},
		{ToastInfo, "Adicione precificações antes de exportar"},
		{ToastError, "Falha ao gerar o arquivo"},
	}

	for _, tt := range tests {
		t.Run(tt.toastType, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			SetToast(e, tt.toastType, tt.message)

			toast := parseToast(t, rec.Header().Get("HX-Trigger"))
			if toast["type"] != tt.toastType {
				t.Errorf("expected type %q, got %q", tt.toastType, toast["type"])
			}
			if toast["message"] != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, toast["message"])
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", `{"ledgerChanged":{"count":2}}`)

	SetToast(e, ToastSuccess, "Merged toast")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["ledgerChanged"]; !ok {
		t.Error("expected ledgerChanged key to be preserved after merge")
	}
	if parseToast(t, rec.Header().Get("HX-Trigger"))["message"] != "Merged toast" {
		t.Error("expected toast to be merged")
	}
}

func TestSetToast_InvalidExistingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", "plainEvent")

	SetToast(e, ToastInfo, "Replaced")

	if parseToast(t, rec.Header().Get("HX-Trigger"))["message"] != "Replaced" {
		t.Error("expected invalid header to be replaced by the toast")
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, ToastSuccess, "Saved")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie")
	}
	decoded, err := url.QueryUnescape(flash.Value)
	if err != nil {
		t.Fatalf("cookie value not query-escaped: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(decoded), &payload); err != nil {
		t.Fatalf("cookie payload is not JSON: %v", err)
	}
	if payload["message"] != "Saved" || payload["type"] != ToastSuccess {
		t.Errorf("unexpected cookie payload: %v", payload)
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none")
	}
	if parseToast(t, rec.Header().Get("HX-Trigger"))["type"] != ToastError {
		t.Error("expected error toast type")
	}
	if rec.Body.String() != "Dados do formulário inválidos" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
