package main

import (
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"hectarepricer/handlers"
	"hectarepricer/services"
)

func main() {
	app := pocketbase.New()

	reportCfg := services.DefaultReportConfig()
	var sessionTTL time.Duration

	flags := app.RootCmd.PersistentFlags()
	flags.StringVar(&reportCfg.Title, "report-title", reportCfg.Title, "title printed on exported reports")
	flags.StringVar(&reportCfg.ProductLabel, "product-label", reportCfg.ProductLabel, "product label shown in page and report footers")
	flags.StringVar(&reportCfg.FileBaseName, "report-filename", reportCfg.FileBaseName, "base name of downloaded report files")
	flags.DurationVar(&sessionTTL, "session-ttl", 12*time.Hour, "idle time after which a pricing session is discarded (0 keeps sessions until restart)")

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		store := handlers.NewSessionStore(sessionTTL)
		log.Printf("serve: pricing sessions kept in memory, idle ttl %s", sessionTTL)

		// Calculator routes work on the caller's session ledger
		pricing := se.Router.Group("")
		pricing.BindFunc(handlers.SessionMiddleware(store))

		// ── Calculator ───────────────────────────────────────────
		pricing.GET("/{$}", handlers.HandleCalculatorPage(reportCfg))
		pricing.POST("/pricings", handlers.HandlePricingSave(reportCfg))

		// Remove (htmx DELETE, plain form POST fallback)
		pricing.DELETE("/pricings/{id}", handlers.HandlePricingDelete())
		pricing.POST("/pricings/{id}/delete", handlers.HandlePricingDelete())

		// ── Export ───────────────────────────────────────────────
		pricing.GET("/export/pdf", handlers.HandleExportPDF(reportCfg))
		pricing.GET("/export/excel", handlers.HandleExportExcel(reportCfg))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
