package aspire

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Register инициализирует модуль Aspire: роуты синхронизации и планировщик.
// Ночной cron оригинала (01:00) заменен тикером раз в сутки.
func Register(app core.App, client *Client) {
	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		e.Router.POST("/api/aspire/sync", func(e *core.RequestEvent) error {
			sync := NewSyncManager(app, client)
			go func() {
				if _, err := sync.SyncContracts(context.Background()); err != nil {
					log.Printf("[Aspire] Background sync error: %v", err)
				}
			}()
			return e.String(http.StatusOK, "Background sync started")
		})

		e.Router.POST("/api/aspire/sync-incremental", func(e *core.RequestEvent) error {
			sync := NewSyncManager(app, client)
			log.Println("[Aspire] Manual incremental sync requested from UI...")
			stats, err := sync.SyncUpdates(e.Request.Context())
			if err != nil {
				return e.InternalServerError("Sync failed", err)
			}
			return e.JSON(http.StatusOK, stats)
		})

		return e.Next()
	})

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		go func() {
			time.Sleep(10 * time.Second) // Даем серверу время прогреться

			sync := NewSyncManager(app, client)
			count, err := sync.contractCount()
			if err != nil {
				log.Printf("[Aspire] Contract count check failed, skipping initial sync: %v", err)
			}
			if needsInitialSync(count, err) {
				log.Println("[Aspire] aspire_contracts table is empty. Starting initial sync...")
				if _, err := sync.SyncContracts(context.Background()); err != nil {
					log.Printf("[Aspire] Initial sync error: %v", err)
				}
			}

			ticker := time.NewTicker(24 * time.Hour)
			for range ticker.C {
				log.Println("[Aspire] Running scheduled incremental sync...")
				if _, err := NewSyncManager(app, client).SyncUpdates(context.Background()); err != nil {
					log.Printf("[Aspire] Sync error: %v", err)
				}
			}
		}()
		return e.Next()
	})
}
