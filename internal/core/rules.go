package core

// PocketBase API Rules (Constants)
const (
	RuleAuthOnly  = "@request.auth.id != ''"
	RuleAdminOnly = "@request.auth.id != '' && @request.auth.superadmin = true"

	// Правила для КОНТРАКТОВ: читают все авторизованные,
	// пишет только синхронизация и админы
	RuleContractView  = RuleAuthOnly
	RuleContractWrite = RuleAdminOnly

	// Правила для ISSUE PROCESS: создаются из интерфейса списка
	RuleIssueView  = RuleAuthOnly
	RuleIssueWrite = RuleAuthOnly
)
