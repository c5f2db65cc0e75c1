package aspire

// Ответы Aspire Cloud API. Эндпоинты данных отдают сырые JSON массивы
// в PascalCase, не OData. $select не поддерживается (400).

// AuthResponse — ответ POST /Authorization
type AuthResponse struct {
	Token        string `json:"Token"`
	RefreshToken string `json:"RefreshToken"`
}

// Contract — контракт (opportunity) из Aspire
type Contract struct {
	OpportunityID  int     `json:"OpportunityID"`
	CompanyName    string  `json:"CompanyName"`
	PropertyName   string  `json:"PropertyName"`
	SalesRepName   string  `json:"SalesRepName"`
	StatusName     string  `json:"OpportunityStatusName"`
	EndDate        string  `json:"EndDate"`
	EstimatedValue float64 `json:"EstimatedDollars"`
	ContactEmail   string  `json:"ContactEmail"`
	LastModified   string  `json:"LastModifiedDateTime"`
}
