package core

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

func EnsureSettingsCollection(app core.App) error {
	settingsCol, err := app.FindCollectionByNameOrId("settings")
	if err != nil {
		settingsCol = core.NewBaseCollection("settings")
		settingsCol.Fields.Add(&core.TextField{Name: "key", Required: true})
		settingsCol.Fields.Add(&core.TextField{Name: "value", Required: true})
		app.Save(settingsCol)
		settingsCol.AddIndex("idx_settings_key", true, "key", "")
	}
	settingsCol.ListRule = types.Pointer(RuleAdminOnly)
	return app.Save(settingsCol)
}

func EnsureCoreCollections(app core.App) error {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return err
	}

	users.ListRule = types.Pointer(RuleAuthOnly)
	users.ViewRule = types.Pointer(RuleAuthOnly)
	if users.Fields.GetByName("superadmin") == nil {
		users.Fields.Add(&core.BoolField{Name: "superadmin"})
	}
	app.Save(users)

	// Контракты, подтянутые из Aspire. Статус — свободный текст:
	// Aspire может прислать значение, которого нет в нашем списке,
	// классификатор обязан его переварить.
	contracts, err := app.FindCollectionByNameOrId("aspire_contracts")
	if err != nil {
		contracts = core.NewBaseCollection("aspire_contracts")
		contracts.Fields.Add(&core.TextField{Name: "party_name", Required: true, Presentable: true})
		contracts.Fields.Add(&core.TextField{Name: "property"})
		contracts.Fields.Add(&core.TextField{Name: "custom_sales_rep"})
		contracts.Fields.Add(&core.TextField{Name: "status"})
		contracts.Fields.Add(&core.DateField{Name: "end_date"})
		contracts.Fields.Add(&core.NumberField{Name: "estimated_value"})
		contracts.Fields.Add(&core.NumberField{Name: "aspire_opportunity_id"})
		contracts.Fields.Add(&core.EmailField{Name: "contact_email"})
		contracts.Fields.Add(&core.DateField{Name: "aspire_modified"})
		contracts.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		contracts.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		app.Save(contracts)
	}
	contracts.ListRule = types.Pointer(RuleContractView)
	contracts.ViewRule = types.Pointer(RuleContractView)
	contracts.CreateRule = types.Pointer(RuleContractWrite)
	contracts.UpdateRule = types.Pointer(RuleContractWrite)
	contracts.DeleteRule = types.Pointer(RuleContractWrite)

	idxList := []struct{ Name, Columns string }{
		{"idx_contracts_end_date", "end_date"},
		{"idx_contracts_status", "status"},
		{"idx_contracts_opportunity", "aspire_opportunity_id"},
	}
	for _, idx := range idxList {
		found := false
		for _, existing := range contracts.Indexes {
			if strings.Contains(existing, idx.Name) {
				found = true
				break
			}
		}
		if !found {
			contracts.AddIndex(idx.Name, false, idx.Columns, "")
		}
	}
	if err := app.Save(contracts); err != nil {
		return err
	}

	issues, err := app.FindCollectionByNameOrId("issue_processes")
	if err != nil {
		issues = core.NewBaseCollection("issue_processes")
		issues.Fields.Add(&core.TextField{Name: "subject", Required: true, Presentable: true})
		issues.Fields.Add(&core.SelectField{Name: "status", MaxSelect: 1, Values: []string{"Open", "In Progress", "Sent to Aspire", "Completed"}})
		issues.Fields.Add(&core.SelectField{Name: "priority", MaxSelect: 1, Values: []string{"Critical", "High", "Medium", "Low"}})
		issues.Fields.Add(&core.DateField{Name: "due_date"})
		issues.Fields.Add(&core.RelationField{Name: "contract", CollectionId: contracts.Id, MaxSelect: 1})
		issues.Fields.Add(&core.TextField{Name: "customer"})
		issues.Fields.Add(&core.TextField{Name: "sales_rep"})
		issues.Fields.Add(&core.DateField{Name: "end_date"})
		issues.Fields.Add(&core.SelectField{Name: "expiry_bucket", MaxSelect: 1, Values: []string{"0-30 Days", "31-60 Days", "61-90 Days", "90+ Days"}})
		issues.Fields.Add(&core.TextField{Name: "description", Max: 10000})
		issues.Fields.Add(&core.SelectField{Name: "aspire_sync_status", MaxSelect: 1, Values: []string{"Not Synced", "Synced", "Error"}})
		issues.Fields.Add(&core.NumberField{Name: "aspire_opportunity_id"})
		issues.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		issues.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		app.Save(issues)
	}
	issues.ListRule = types.Pointer(RuleIssueView)
	issues.ViewRule = types.Pointer(RuleIssueView)
	issues.CreateRule = types.Pointer(RuleIssueWrite)
	issues.UpdateRule = types.Pointer(RuleIssueWrite)
	issues.DeleteRule = types.Pointer(RuleAdminOnly)

	found := false
	for _, existing := range issues.Indexes {
		if strings.Contains(existing, "idx_issues_status") {
			found = true
			break
		}
	}
	if !found {
		issues.AddIndex("idx_issues_status", false, "status", "")
	}
	return app.Save(issues)
}
