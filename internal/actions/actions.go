package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/rpc"
)

// WarnNoSelection показывается при запуске группового действия без выделения
const WarnNoSelection = "Please select at least one contract"

// Navigation — цель перехода интерфейса после успешного действия
type Navigation struct {
	RecordType string `json:"record_type"`
	Name       string `json:"name"`
}

// Result описывает реакцию интерфейса на групповое действие.
// Пустой Result — «тихий» исход: ничего не показываем, никуда не переходим.
type Result struct {
	Warning      string      `json:"warning,omitempty"`
	Confirmation string      `json:"confirmation,omitempty"`
	Navigate     *Navigation `json:"navigate,omitempty"`
}

// Service выполняет групповые действия списка контрактов.
// Все удаленные вызовы идут через Caller; состояние между вызовами не хранится.
type Service struct {
	caller rpc.Caller
}

func NewService(caller rpc.Caller) *Service {
	return &Service{caller: caller}
}

// CreateIssue создает Issue Process из первого выделенного контракта.
// Неудача удаленного вызова не показывается пользователю — пустой результат.
func (s *Service) CreateIssue(ctx context.Context, selected []string) Result {
	if len(selected) == 0 {
		return Result{Warning: WarnNoSelection}
	}

	issueName, ok := s.createIssueFromContract(ctx, selected[0])
	if !ok {
		return Result{}
	}
	return Result{Navigate: &Navigation{RecordType: "Issue Process", Name: issueName}}
}

// SendEmail создает Issue Process из первого выделенного контракта и
// отправляет письмо о продлении. Цепочка строго последовательная:
// второй вызов уходит только после успеха первого, каждый шаг
// обрывает цепочку молча.
func (s *Service) SendEmail(ctx context.Context, selected []string) Result {
	if len(selected) == 0 {
		return Result{Warning: WarnNoSelection}
	}

	issueName, ok := s.createIssueFromContract(ctx, selected[0])
	if !ok {
		return Result{}
	}

	raw, err := s.caller.Call(ctx, rpc.MethodSendRenewalEmail, map[string]interface{}{
		"issue_name": issueName,
	})
	if err != nil {
		log.Printf("[ERROR] SendEmail: send_renewal_email(%s) failed: %v", issueName, err)
		return Result{}
	}

	var resp rpc.EmailResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("[ERROR] SendEmail: bad send_renewal_email response: %v", err)
		return Result{}
	}
	// Флаг успеха отсутствует или false, либо нет получателя — тихий no-op.
	// Пользователь об этом не узнает; поведение сохранено намеренно.
	if resp.Message == nil || !resp.Message.Success || resp.Message.Recipient == "" {
		log.Printf("[WARN] SendEmail: renewal email for %s not confirmed", issueName)
		return Result{}
	}

	return Result{
		Confirmation: fmt.Sprintf("Renewal email sent to %s", resp.Message.Recipient),
		Navigate:     &Navigation{RecordType: "Issue Process", Name: issueName},
	}
}

func (s *Service) createIssueFromContract(ctx context.Context, contractName string) (string, bool) {
	raw, err := s.caller.Call(ctx, rpc.MethodCreateIssueFromContract, map[string]interface{}{
		"contract_name": contractName,
	})
	if err != nil {
		log.Printf("[ERROR] create_issue_from_contract(%s) failed: %v", contractName, err)
		return "", false
	}

	var resp rpc.MessageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("[ERROR] bad create_issue_from_contract response: %v", err)
		return "", false
	}
	if resp.Message == "" {
		log.Printf("[WARN] create_issue_from_contract(%s) returned empty result", contractName)
		return "", false
	}
	return resp.Message, true
}
