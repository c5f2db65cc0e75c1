package core

import (
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// RegisterIssueDefaults проставляет значения по умолчанию для Issue Process,
// созданных любым путем (API, админка, удаленный вызов)
func RegisterIssueDefaults(app core.App) {
	app.OnRecordCreate("issue_processes").BindFunc(func(e *core.RecordEvent) error {
		if e.Record.GetString("status") == "" {
			e.Record.Set("status", indicator.IssueStatusOpen)
		}
		if e.Record.GetString("aspire_sync_status") == "" {
			e.Record.Set("aspire_sync_status", "Not Synced")
		}

		// Корзина считается от даты окончания, если создатель ее не указал
		if e.Record.GetString("expiry_bucket") == "" {
			if d := e.Record.GetDateTime("end_date"); !d.IsZero() {
				days := indicator.DaysBetween(time.Now(), d.Time())
				e.Record.Set("expiry_bucket", indicator.ExpiryBucket(days))
			}
		}
		return e.Next()
	})
}
