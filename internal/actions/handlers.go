package actions

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type selectionRequest struct {
	Selected []string `json:"selected"`
}

// HandleCreateIssue — POST /api/contracts/create-issue
func HandleCreateIssue(svc *Service, e *core.RequestEvent) error {
	return handleAction(e, svc.CreateIssue)
}

// HandleSendEmail — POST /api/contracts/send-email
func HandleSendEmail(svc *Service, e *core.RequestEvent) error {
	return handleAction(e, svc.SendEmail)
}

func handleAction(e *core.RequestEvent, run func(ctx context.Context, selected []string) Result) error {
	var req selectionRequest
	if err := e.BindBody(&req); err != nil {
		log.Printf("[WARN] bulk action: bad request body: %v", err)
		return e.BadRequestError("Invalid request body", err)
	}

	result := run(e.Request.Context(), req.Selected)
	if result.Warning != "" {
		// Предупреждение о пустом выделении — ошибка ввода, не сервера
		return e.JSON(http.StatusBadRequest, result)
	}
	return e.JSON(http.StatusOK, result)
}
