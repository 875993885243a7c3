package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// FeatureNormalizer coerces raw customer attributes into the oracle's input schema.
type FeatureNormalizer struct{}

func NewFeatureNormalizer() *FeatureNormalizer {
	return &FeatureNormalizer{}
}

// Normalize validates every declared field of the profile, in schema order, and
// encodes categorical fields with the frozen table. Out-of-domain numbers are
// passed through unchanged. Undeclared keys in raw are ignored.
func (n *FeatureNormalizer) Normalize(raw map[string]any, profile valueobject.Profile, encodings model.EncodingTable) (model.ValidatedFeatures, error) {
	if profile.IsZero() {
		return model.ValidatedFeatures{}, &model.ValidationError{Field: "profile", Reason: "profile is required"}
	}

	f := model.ValidatedFeatures{Profile: profile}
	codes := make(map[string]int)

	for _, fs := range model.Schema(profile) {
		v, ok := raw[fs.Name]
		if !ok || v == nil {
			return model.ValidatedFeatures{}, &model.ValidationError{Field: fs.Name, Reason: "required field is missing"}
		}

		switch fs.Kind {
		case model.FieldNumeric:
			i, err := coerceInt(v)
			if err != nil {
				return model.ValidatedFeatures{}, &model.ValidationError{Field: fs.Name, Reason: err.Error()}
			}
			assignNumeric(&f, fs.Name, i)

		case model.FieldCategorical:
			s, ok := v.(string)
			if !ok {
				return model.ValidatedFeatures{}, &model.ValidationError{
					Field:  fs.Name,
					Reason: fmt.Sprintf("expected text, got %T", v),
				}
			}
			code, err := encodings.Encode(fs.Name, s)
			if err != nil {
				return model.ValidatedFeatures{}, err
			}
			if err := assignCategory(&f, fs.Name, s); err != nil {
				return model.ValidatedFeatures{}, &model.ValidationError{Field: fs.Name, Reason: err.Error()}
			}
			codes[fs.Name] = code
		}
	}

	return f.WithCodes(codes), nil
}

// coerceInt accepts integers, integral floats and base-10 numeric text.
// Booleans are rejected even though cast would map them to 0 and 1, and
// fractional values are rejected rather than truncated.
func coerceInt(v any) (int, error) {
	switch x := v.(type) {
	case bool:
		return 0, fmt.Errorf("expected a number, got bool")
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected a base-10 integer, got %q", x)
		}
		return int(i), nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return 0, fmt.Errorf("expected a number: %w", err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("expected a whole number, got %v", f)
		}
		return int(f), nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("expected a number: %w", err)
	}
	return i, nil
}

func assignNumeric(f *model.ValidatedFeatures, field string, v int) {
	switch field {
	case model.FieldCreditHistory:
		f.CreditHistory = v
	case model.FieldFamilyCreditHistory:
		f.FamilyCreditHistory = v
	case model.FieldRiskRating:
		f.RiskRating = v
	case model.FieldAge:
		f.Age = v
	case model.FieldRelationshipYears:
		f.RelationshipYears = v
	}
}

func assignCategory(f *model.ValidatedFeatures, field, v string) error {
	switch field {
	case model.FieldPastTransactions:
		pt, err := valueobject.PastTransactionsFromString(f.Profile, v)
		if err != nil {
			return err
		}
		f.PastTransactions = pt
	case model.FieldMarketTrends:
		mt, err := valueobject.MarketTrendFromString(v)
		if err != nil {
			return err
		}
		f.MarketTrend = mt
	}
	return nil
}
