package model

import (
	"sort"

	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Input field names, as they appear in raw customer profiles and oracle schemas.
const (
	FieldCreditHistory       = "Credit_History"
	FieldFamilyCreditHistory = "Family_Credit_History"
	FieldRiskRating          = "Risk_Rating"
	FieldAge                 = "Age"
	FieldRelationshipYears   = "Customer_Relationship_Years"
	FieldPastTransactions    = "Past_Transactions"
	FieldMarketTrends        = "Market_Trends"
)

// FieldKind distinguishes numeric from categorical inputs.
type FieldKind int

const (
	FieldNumeric FieldKind = iota + 1
	FieldCategorical
)

// FieldSpec declares one input attribute of a profile.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

var fdSchema = []FieldSpec{
	{Name: FieldCreditHistory, Kind: FieldNumeric},
	{Name: FieldRiskRating, Kind: FieldNumeric},
	{Name: FieldAge, Kind: FieldNumeric},
	{Name: FieldRelationshipYears, Kind: FieldNumeric},
	{Name: FieldPastTransactions, Kind: FieldCategorical},
	{Name: FieldMarketTrends, Kind: FieldCategorical},
}

var loanSchema = []FieldSpec{
	{Name: FieldCreditHistory, Kind: FieldNumeric},
	{Name: FieldFamilyCreditHistory, Kind: FieldNumeric},
	{Name: FieldRiskRating, Kind: FieldNumeric},
	{Name: FieldAge, Kind: FieldNumeric},
	{Name: FieldRelationshipYears, Kind: FieldNumeric},
	{Name: FieldPastTransactions, Kind: FieldCategorical},
	{Name: FieldMarketTrends, Kind: FieldCategorical},
}

// Schema returns the ordered input declaration for a profile.
func Schema(profile valueobject.Profile) []FieldSpec {
	if profile.IsLoan() {
		return append([]FieldSpec(nil), loanSchema...)
	}
	return append([]FieldSpec(nil), fdSchema...)
}

// Declares reports whether the profile's schema contains the named field.
func Declares(profile valueobject.Profile, field string) bool {
	for _, f := range Schema(profile) {
		if f.Name == field {
			return true
		}
	}
	return false
}

// ValidatedFeatures is a customer profile after coercion and encoding.
type ValidatedFeatures struct {
	Profile             valueobject.Profile
	CreditHistory       int
	FamilyCreditHistory int
	RiskRating          int
	Age                 int
	RelationshipYears   int
	PastTransactions    valueobject.PastTransactions
	MarketTrend         valueobject.MarketTrend

	codes map[string]int
}

// WithCodes returns a copy carrying the oracle's integer codes for categorical fields.
func (f ValidatedFeatures) WithCodes(codes map[string]int) ValidatedFeatures {
	next := f
	next.codes = make(map[string]int, len(codes))
	for k, v := range codes {
		next.codes[k] = v
	}
	return next
}

// Code returns the encoded value of a categorical field.
func (f ValidatedFeatures) Code(field string) (int, bool) {
	c, ok := f.codes[field]
	return c, ok
}

// Numeric returns the value the oracle sees for a field: the raw number for
// numeric fields and the integer code for categorical ones.
func (f ValidatedFeatures) Numeric(field string) (float64, bool) {
	if !Declares(f.Profile, field) {
		return 0, false
	}
	switch field {
	case FieldCreditHistory:
		return float64(f.CreditHistory), true
	case FieldFamilyCreditHistory:
		return float64(f.FamilyCreditHistory), true
	case FieldRiskRating:
		return float64(f.RiskRating), true
	case FieldAge:
		return float64(f.Age), true
	case FieldRelationshipYears:
		return float64(f.RelationshipYears), true
	}
	c, ok := f.codes[field]
	return float64(c), ok
}

// Category returns the raw text of a categorical field.
func (f ValidatedFeatures) Category(field string) (string, bool) {
	switch field {
	case FieldPastTransactions:
		return f.PastTransactions.String(), true
	case FieldMarketTrends:
		return f.MarketTrend.String(), true
	}
	return "", false
}

// IsNewCustomer reports the "no recorded history" sentinel: zero credit, risk and tenure.
func (f ValidatedFeatures) IsNewCustomer() bool {
	return f.CreditHistory == 0 && f.RiskRating == 0 && f.RelationshipYears == 0
}

// EncodingTable is the frozen categorical encoding shipped with an oracle artifact.
// A value's code is its position in the field's class list.
type EncodingTable struct {
	classes map[string][]string
}

// NewEncodingTable copies the class lists so the table cannot be mutated afterwards.
func NewEncodingTable(classes map[string][]string) EncodingTable {
	cp := make(map[string][]string, len(classes))
	for field, values := range classes {
		cp[field] = append([]string(nil), values...)
	}
	return EncodingTable{classes: cp}
}

// Encode looks up the code for a value. A field missing from the table is a
// schema mismatch and reported as an OracleUnavailableError.
func (t EncodingTable) Encode(field, value string) (int, error) {
	values, ok := t.classes[field]
	if !ok {
		return 0, &OracleUnavailableError{Reason: "encoding table has no field " + field}
	}
	for i, v := range values {
		if v == value {
			return i, nil
		}
	}
	return 0, &EncodingError{Field: field, Value: value}
}

// Classes returns a copy of the class list for a field.
func (t EncodingTable) Classes(field string) ([]string, bool) {
	values, ok := t.classes[field]
	if !ok {
		return nil, false
	}
	return append([]string(nil), values...), true
}

// Fields lists the encoded fields in sorted order.
func (t EncodingTable) Fields() []string {
	fields := make([]string, 0, len(t.classes))
	for f := range t.classes {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
