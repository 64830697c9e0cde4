package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"hectarepricer/services"
	"hectarepricer/templates"
)

// now is replaced in tests.
var now = time.Now

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// buildPageData collects the session state the calculator screen shows.
func buildPageData(sess *Session, form services.PricingForm, cfg services.ReportConfig) templates.CalculatorPageData {
	records := sess.Ledger.List()
	return templates.CalculatorPageData{
		Form:         form,
		Records:      records,
		Totals:       services.CalcLedgerTotals(records),
		ProductLabel: cfg.ProductLabel,
		Year:         now().Year(),
	}
}

// render writes an HTML component, logging render faults under name.
func render(e *core.RequestEvent, name string, component templ.Component) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(e.Request.Context(), e.Response); err != nil {
		log.Printf("%s: failed to render: %v", name, err)
		return err
	}
	return nil
}

// HandleCalculatorPage renders the calculator with the session's ledger. The
// price field is pre-filled with the last price used in this session.
func HandleCalculatorPage(cfg services.ReportConfig) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			return ErrorToast(e, http.StatusInternalServerError, "Sessão indisponível. Recarregue a página.")
		}

		form := services.PricingForm{
			PricePerHectare: sess.Price(),
			Errors:          make(map[string]string),
		}
		data := buildPageData(sess, form, cfg)

		var component templ.Component
		if isHTMX(e.Request) {
			component = templates.CalculatorContent(data)
		} else {
			component = templates.CalculatorPage(data)
		}
		return render(e, "calculator", component)
	}
}

// HandlePricingSave validates the submitted form and, when valid, prepends
// the computed record to the session ledger. Name, width and length are
// cleared afterwards; the price per hectare is kept.
func HandlePricingSave(cfg services.ReportConfig) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			return ErrorToast(e, http.StatusInternalServerError, "Sessão indisponível. Recarregue a página.")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		// Raw values; the parser decides what is valid.
		form := services.PricingForm{
			Name:            e.Request.FormValue(services.FieldName),
			PricePerHectare: e.Request.FormValue(services.FieldPricePerHectare),
			Width:           e.Request.FormValue(services.FieldWidth),
			Length:          e.Request.FormValue(services.FieldLength),
		}

		record, ok, err := form.Submit(sess.Ledger)
		if err != nil {
			log.Printf("pricing_save: could not compute pricing: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Não foi possível calcular o preço.")
		}

		if !ok {
			SetToast(e, ToastWarning, "Corrija os campos destacados")
			data := buildPageData(sess, form, cfg)
			if isHTMX(e.Request) {
				return render(e, "pricing_save", templates.CalculatorContent(data))
			}
			return render(e, "pricing_save", templates.CalculatorPage(data))
		}

		sess.SetPrice(form.PricePerHectare)
		SetToast(e, ToastSuccess, fmt.Sprintf("%s adicionado: %s", record.Name, services.FormatBRL(record.TotalPrice)))

		if isHTMX(e.Request) {
			return render(e, "pricing_save", templates.CalculatorContent(buildPageData(sess, form, cfg)))
		}
		return e.Redirect(http.StatusFound, "/")
	}
}

// HandlePricingDelete removes a record from the session ledger. Unknown ids
// are a no-op and still re-render the list.
func HandlePricingDelete() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		if sess == nil {
			return ErrorToast(e, http.StatusInternalServerError, "Sessão indisponível. Recarregue a página.")
		}

		id := e.Request.PathValue("id")
		if record, removed := sess.Ledger.Remove(id); removed {
			SetToast(e, ToastSuccess, fmt.Sprintf("%s removido", record.Name))
		}

		if !isHTMX(e.Request) {
			return e.Redirect(http.StatusFound, "/")
		}
		records := sess.Ledger.List()
		return render(e, "pricing_delete", templates.PricingResults(templates.ResultsData{
			Records: records,
			Totals:  services.CalcLedgerTotals(records),
		}))
	}
}
