package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/actions"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/api"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/aspire"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/config"
	appCore "github.com/ArkangelLabs/kraken-crystal-clean/internal/core"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/listview"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/report"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/rpc"
)

// Адрес собственных процедур по умолчанию: вызовы из действий списка
// идут через тот же HTTP стык, что и с фронта
const defaultMethodBaseURL = "http://127.0.0.1:8090/api/method"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	pbApp := pocketbase.New()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[WARN] config.json not found, using defaults: %v", err)
		cfg = &config.AppConfig{}
	}

	// Регистрируем Aspire (он сам добавит роуты и планировщик в OnServe)
	if client, err := aspire.NewClient(cfg.Aspire); err != nil {
		log.Printf("[WARN] Aspire sync disabled: %v", err)
	} else {
		aspire.Register(pbApp, client)
	}

	// Конфигурации списков собираются один раз на старте
	listview.RegisterDefaults()
	listview.Freeze()

	methodBase := cfg.MethodBaseURL
	if methodBase == "" {
		methodBase = defaultMethodBaseURL
	}
	actionSvc := actions.NewService(rpc.NewClient(methodBase))

	pbApp.OnServe().BindFunc(func(e *core.ServeEvent) error {
		log.Println("[INFO] Server is starting, registering hooks and routes...")

		appCore.RegisterIssueDefaults(pbApp)

		// Списки с бейджами и их групповые действия
		e.Router.GET("/api/listview/{collection}", func(e *core.RequestEvent) error { return listview.HandleList(pbApp, e) })
		e.Router.GET("/api/listview/{collection}/actions", listview.HandleActions)

		// Групповые действия списка контрактов
		e.Router.POST("/api/contracts/create-issue", func(e *core.RequestEvent) error { return actions.HandleCreateIssue(actionSvc, e) })
		e.Router.POST("/api/contracts/send-email", func(e *core.RequestEvent) error { return actions.HandleSendEmail(actionSvc, e) })

		// Именованные серверные процедуры
		e.Router.POST("/api/method/create_issue_from_contract", func(e *core.RequestEvent) error { return api.HandleCreateIssueFromContract(pbApp, e) })
		e.Router.POST("/api/method/send_renewal_email", func(e *core.RequestEvent) error { return api.HandleSendRenewalEmail(pbApp, e) })

		// Отчеты: истекающие контракты и сводки по менеджерам
		e.Router.GET("/api/report/expiring-contracts", func(e *core.RequestEvent) error { return report.HandleExpiringContracts(pbApp, e) })
		e.Router.GET("/api/report/sales-rep-summary", func(e *core.RequestEvent) error { return report.HandleSalesRepSummary(pbApp, e) })
		e.Router.GET("/api/report/expiration-by-sales-rep", func(e *core.RequestEvent) error { return report.HandleExpirationBySalesRep(pbApp, e) })

		if err := bootstrapCollections(e.App, cfg); err != nil {
			log.Printf("[ERROR] Bootstrap collections failed: %v", err)
		}

		log.Println("[INFO] Server is ready to serve requests")
		return e.Next()
	})

	if err := pbApp.Start(); err != nil {
		log.Fatal(err)
	}
}

func bootstrapCollections(app core.App, cfg *config.AppConfig) error {
	log.Println("[INFO] Initializing collections structure...")

	if err := appCore.EnsureCoreCollections(app); err != nil {
		return err
	}
	if err := appCore.EnsureSettingsCollection(app); err != nil {
		return err
	}

	// Зеркалим адрес процедур в settings, чтобы его было видно из админки
	if cfg.MethodBaseURL != "" {
		settings, _ := app.FindCollectionByNameOrId("settings")
		if settings != nil {
			record, _ := app.FindFirstRecordByFilter("settings", "key='method_base_url'")
			if record == nil {
				record = core.NewRecord(settings)
				record.Set("key", "method_base_url")
			}
			record.Set("value", cfg.MethodBaseURL)
			if err := app.Save(record); err == nil {
				log.Println("[INFO] Method base URL synced successfully")
			}
		}
	}

	return nil
}
