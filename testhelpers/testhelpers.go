// Package testhelpers provides fixtures and assertions shared by the
// handler and service tests.
package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hectarepricer/services"
)

// AddTestPricing submits raw form values through the form controller and
// adds the resulting record to the ledger. It fails the test on invalid input.
func AddTestPricing(t *testing.T, ledger *services.Ledger, name, price, width, length string) services.PricingRecord {
	t.Helper()

	form := services.PricingForm{Name: name, PricePerHectare: price, Width: width, Length: length}
	record, ok, err := form.Submit(ledger)
	if err != nil {
		t.Fatalf("failed to compute test pricing: %v", err)
	}
	if !ok {
		t.Fatalf("test pricing %q is invalid: %v", name, form.Errors)
	}
	return record
}

// NewFormRequest builds a form-encoded POST request, optionally flagged as an
// htmx request.
func NewFormRequest(path string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q", frag)
		}
	}
}

// AssertRedirect checks the Location header of a 302 response.
func AssertRedirect(t *testing.T, rec *httptest.ResponseRecorder, expectedURL string) {
	t.Helper()

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != expectedURL {
		t.Errorf("expected redirect to %q, got %q", expectedURL, loc)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
