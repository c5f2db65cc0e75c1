package indicator

import (
	"github.com/pocketbase/pocketbase/core"
)

// Статусы Issue Process
const (
	IssueStatusOpen         = "Open"
	IssueStatusInProgress   = "In Progress"
	IssueStatusSentToAspire = "Sent to Aspire"
	IssueStatusCompleted    = "Completed"
)

// Приоритеты Issue Process
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// IssueRecord — read-only срез полей записи issue_processes
type IssueRecord struct {
	Status       string
	Priority     string
	DueDate      string
	SalesRep     string
	ExpiryBucket string
}

// IssueFromRecord извлекает нужные классификатору поля из записи PocketBase
func IssueFromRecord(r *core.Record) IssueRecord {
	return IssueRecord{
		Status:       r.GetString("status"),
		Priority:     r.GetString("priority"),
		DueDate:      r.GetString("due_date"),
		SalesRep:     r.GetString("sales_rep"),
		ExpiryBucket: r.GetString("expiry_bucket"),
	}
}

// ForIssue возвращает бейдж для записи Issue Process.
// Первое совпадение выигрывает; неизвестный статус уходит в серый fallback.
func ForIssue(rec IssueRecord) Indicator {
	switch rec.Status {
	case IssueStatusCompleted:
		return Indicator{"Completed", ColorGreen, expr(clause("status", "=", IssueStatusCompleted))}
	case IssueStatusSentToAspire:
		return Indicator{"Sent to Aspire", ColorBlue, expr(clause("status", "=", IssueStatusSentToAspire))}
	case IssueStatusInProgress:
		return Indicator{"In Progress", ColorOrange, expr(clause("status", "=", IssueStatusInProgress))}
	case IssueStatusOpen:
		switch rec.Priority {
		case PriorityCritical:
			return Indicator{"Critical", ColorRed, expr(
				clause("status", "=", IssueStatusOpen),
				clause("priority", "=", PriorityCritical),
			)}
		case PriorityHigh:
			return Indicator{"High", ColorOrange, expr(
				clause("status", "=", IssueStatusOpen),
				clause("priority", "=", PriorityHigh),
			)}
		default:
			return Indicator{"Open", ColorYellow, expr(clause("status", "=", IssueStatusOpen))}
		}
	default:
		return Indicator{rec.Status, ColorGray, expr(clause("status", "=", rec.Status))}
	}
}
