package testutil

// Deterministic identifiers shared by integration tests.
const (
	TestTenantID    = "00000000-0000-0000-0000-000000000010"
	TestCustomerRef = "CUST-0001"
)

// FDProfile is a raw fixed-deposit feature map of a long-standing customer.
func FDProfile() map[string]any {
	return map[string]any{
		"Credit_History":              700,
		"Risk_Rating":                 3,
		"Age":                         45,
		"Customer_Relationship_Years": 6,
		"Past_Transactions":           "Positive",
		"Market_Trends":               "Favorable",
	}
}

// LoanProfile is a raw loan feature map the sample artifacts approve.
func LoanProfile() map[string]any {
	return map[string]any{
		"Credit_History":              750,
		"Family_Credit_History":       650,
		"Risk_Rating":                 3,
		"Age":                         40,
		"Customer_Relationship_Years": 5,
		"Past_Transactions":           "Positive",
		"Market_Trends":               "Neutral",
	}
}
