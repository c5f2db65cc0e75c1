package api

import (
	"fmt"
	"log"
	"net/http"
	"net/mail"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

// HandleSendRenewalEmail — POST /api/method/send_renewal_email.
// Отправляет клиенту письмо о продлении контракта, привязанного к Issue Process.
// Конверт ответа: {"message": {"success": bool, "recipient": string}}.
// Нет контакта или письмо не ушло — success=false, без HTTP ошибки:
// решение показывать ли это пользователю остается за вызывающей стороной.
func HandleSendRenewalEmail(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	var req struct {
		IssueName string `json:"issue_name"`
	}
	if err := e.BindBody(&req); err != nil || req.IssueName == "" {
		return e.BadRequestError("issue_name is required", err)
	}

	issue, err := pbApp.FindRecordById("issue_processes", req.IssueName)
	if err != nil {
		log.Printf("[WARN] send_renewal_email: issue %q not found: %v", req.IssueName, err)
		return e.NotFoundError("Issue not found", err)
	}

	contractId := issue.GetString("contract")
	if contractId == "" {
		return notSent(e)
	}
	contract, err := pbApp.FindRecordById("aspire_contracts", contractId)
	if err != nil {
		log.Printf("[WARN] send_renewal_email: contract %q not found: %v", contractId, err)
		return notSent(e)
	}

	recipient := contract.GetString("contact_email")
	if recipient == "" {
		log.Printf("[WARN] send_renewal_email: contract %s has no contact email", contract.Id)
		return notSent(e)
	}

	party := contract.GetString("party_name")
	subject := fmt.Sprintf("Contract renewal — %s", party)
	body := fmt.Sprintf(
		`<h3>Contract Renewal</h3><p>Dear %s,</p><p>Your maintenance contract ends on <strong>%s</strong>. Please contact your sales representative %s to arrange the renewal.</p>`,
		party,
		contract.GetString("end_date"),
		issue.GetString("sales_rep"),
	)

	settings := pbApp.Settings()
	message := &mailer.Message{
		From:    mail.Address{Address: settings.Meta.SenderAddress, Name: settings.Meta.SenderName},
		To:      []mail.Address{{Address: recipient}},
		Subject: subject,
		HTML:    body,
	}
	if err := pbApp.NewMailClient().Send(message); err != nil {
		log.Printf("[ERROR] send_renewal_email: send to %s failed: %v", recipient, err)
		return notSent(e)
	}

	log.Printf("[INFO] Renewal email for issue %s sent to %s", issue.Id, recipient)
	return e.JSON(http.StatusOK, map[string]interface{}{
		"message": map[string]interface{}{"success": true, "recipient": recipient},
	})
}

func notSent(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, map[string]interface{}{
		"message": map[string]interface{}{"success": false},
	})
}
