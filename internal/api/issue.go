package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// HandleCreateIssueFromContract — POST /api/method/create_issue_from_contract.
// Создает Issue Process из контракта Aspire и возвращает имя новой записи
// в конверте {"message": <name>}. Заготовка для последующей синхронизации
// в Aspire Activities API.
func HandleCreateIssueFromContract(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	var req struct {
		ContractName string `json:"contract_name"`
	}
	if err := e.BindBody(&req); err != nil || req.ContractName == "" {
		return e.BadRequestError("contract_name is required", err)
	}

	contract, err := pbApp.FindRecordById("aspire_contracts", req.ContractName)
	if err != nil {
		log.Printf("[WARN] create_issue_from_contract: contract %q not found: %v", req.ContractName, err)
		return e.NotFoundError("Contract not found", err)
	}

	var daysUntil *int
	expiryBucket := ""
	endDate := contract.GetDateTime("end_date")
	if !endDate.IsZero() {
		d := indicator.DaysBetween(time.Now(), endDate.Time())
		daysUntil = &d
		expiryBucket = indicator.ExpiryBucket(d)
	}

	priority := indicator.PriorityMedium
	if daysUntil != nil && *daysUntil <= 30 {
		priority = indicator.PriorityHigh
	}

	issuesCol, err := pbApp.FindCollectionByNameOrId("issue_processes")
	if err != nil {
		return e.InternalServerError("issue_processes collection missing", err)
	}

	issue := core.NewRecord(issuesCol)
	issue.Set("subject", "contract ending")
	issue.Set("status", indicator.IssueStatusOpen)
	issue.Set("priority", priority)
	issue.Set("due_date", contract.GetString("end_date"))
	issue.Set("contract", contract.Id)
	issue.Set("customer", contract.GetString("party_name"))
	issue.Set("sales_rep", contract.GetString("custom_sales_rep"))
	issue.Set("end_date", contract.GetString("end_date"))
	issue.Set("expiry_bucket", expiryBucket)
	issue.Set("aspire_opportunity_id", contract.GetInt("aspire_opportunity_id"))
	issue.Set("aspire_sync_status", "Not Synced")
	issue.Set("description", issueDescription(contract, daysUntil))

	if err := pbApp.Save(issue); err != nil {
		log.Printf("[ERROR] create_issue_from_contract: save failed: %v", err)
		return e.InternalServerError("Failed to create issue", err)
	}

	log.Printf("[INFO] Created issue %s from contract %s", issue.Id, contract.Id)
	return e.JSON(http.StatusOK, map[string]interface{}{"message": issue.Id})
}

func issueDescription(contract *core.Record, daysUntil *int) string {
	property := contract.GetString("property")
	if property == "" {
		property = "N/A"
	}
	salesRep := contract.GetString("custom_sales_rep")
	if salesRep == "" {
		salesRep = "Unassigned"
	}
	days := "N/A"
	if daysUntil != nil {
		days = fmt.Sprintf("%d", *daysUntil)
	}

	return fmt.Sprintf(`Contract expiring for %s

Property: %s
Renewal Date: %s
Estimated Value: %v
Sales Rep: %s
Days Until Expiry: %s
`,
		contract.GetString("party_name"),
		property,
		contract.GetString("end_date"),
		contract.GetFloat("estimated_value"),
		salesRep,
		days,
	)
}
