package listview

import (
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// RegisterDefaults наполняет реестр конфигурациями списков приложения.
// Вызывается один раз при старте сервера, до Freeze.
func RegisterDefaults() {
	Register("aspire_contracts", Settings{
		Indicator: func(r *core.Record, today time.Time) indicator.Indicator {
			return indicator.ForContract(indicator.ContractFromRecord(r), today)
		},
		Actions: []Action{
			{Name: "create_issue", Label: "Create Issue"},
			{Name: "send_email", Label: "Send Email"},
		},
	})

	Register("issue_processes", Settings{
		Indicator: func(r *core.Record, today time.Time) indicator.Indicator {
			return indicator.ForIssue(indicator.IssueFromRecord(r))
		},
	})
}
