// Package codec serialises decision records for the audit store and the cache.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

type recordJSON struct {
	Profile         string          `json:"profile"`
	Eligible        bool            `json:"eligible"`
	Rate            decimal.Decimal `json:"rate"`
	MaxAmount       decimal.Decimal `json:"max_amount"`
	Confidence      string          `json:"confidence"`
	Tier            string          `json:"tier"`
	Reasons         []reasonJSON    `json:"reasons"`
	PositiveReasons []string        `json:"positive_reasons"`
	NegativeReasons []string        `json:"negative_reasons"`
	Rejections      []rejectionJSON `json:"rejections"`
	Unexplained     bool            `json:"unexplained_rejection,omitempty"`
	ConfidenceNote  string          `json:"confidence_note,omitempty"`
}

type reasonJSON struct {
	Factor          string          `json:"factor"`
	Description     string          `json:"description"`
	Impact          string          `json:"impact"`
	NumericalImpact decimal.Decimal `json:"numerical_impact"`
}

type rejectionJSON struct {
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

// EncodeRecord renders a record as JSON.
func EncodeRecord(r model.DecisionRecord) ([]byte, error) {
	doc := recordJSON{
		Profile:         r.Profile().String(),
		Eligible:        r.Prediction.Eligible,
		Rate:            r.Prediction.Rate,
		MaxAmount:       r.Prediction.MaxAmount,
		Confidence:      r.Confidence.String(),
		Tier:            r.Tier.Label(),
		Reasons:         make([]reasonJSON, 0, len(r.Explanation.Table)),
		PositiveReasons: r.Explanation.PositiveReasons,
		NegativeReasons: r.Explanation.NegativeReasons,
		Rejections:      make([]rejectionJSON, 0, len(r.Rejections)),
		Unexplained:     r.Diagnostics.UnexplainedRejection,
		ConfidenceNote:  r.Diagnostics.ConfidenceNote,
	}
	for _, e := range r.Explanation.Table {
		doc.Reasons = append(doc.Reasons, reasonJSON{
			Factor:          e.Factor,
			Description:     e.Description,
			Impact:          e.Impact.String(),
			NumericalImpact: e.NumericalImpact,
		})
	}
	for _, rej := range r.Rejections {
		doc.Rejections = append(doc.Rejections, rejectionJSON(rej))
	}
	return json.Marshal(doc)
}

// DecodeRecord is the inverse of EncodeRecord.
func DecodeRecord(data []byte) (model.DecisionRecord, error) {
	var doc recordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.DecisionRecord{}, fmt.Errorf("decode record: %w", err)
	}

	profile, err := valueobject.ProfileFromString(doc.Profile)
	if err != nil {
		return model.DecisionRecord{}, fmt.Errorf("decode record: %w", err)
	}
	confidence, err := valueobject.ConfidenceFromString(doc.Confidence)
	if err != nil {
		return model.DecisionRecord{}, fmt.Errorf("decode record: %w", err)
	}
	tier, err := valueobject.CustomerTierFromLabel(doc.Tier)
	if err != nil {
		return model.DecisionRecord{}, fmt.Errorf("decode record: %w", err)
	}

	table := make(model.SummaryTable, 0, len(doc.Reasons))
	for _, r := range doc.Reasons {
		impact, err := valueobject.ImpactFromString(r.Impact)
		if err != nil {
			return model.DecisionRecord{}, fmt.Errorf("decode record: factor %s: %w", r.Factor, err)
		}
		table = append(table, model.ReasonEntry{
			Factor:          r.Factor,
			Description:     r.Description,
			Impact:          impact,
			NumericalImpact: r.NumericalImpact,
		})
	}
	rejections := make([]model.RejectionReason, 0, len(doc.Rejections))
	for _, r := range doc.Rejections {
		rejections = append(rejections, model.RejectionReason(r))
	}

	return model.DecisionRecord{
		Prediction: model.PredictionResult{
			Profile:   profile,
			Eligible:  doc.Eligible,
			Rate:      doc.Rate,
			MaxAmount: doc.MaxAmount,
		},
		Confidence: confidence,
		Tier:       tier,
		Explanation: model.Explanation{
			Table:           table,
			PositiveReasons: nonNil(doc.PositiveReasons),
			NegativeReasons: nonNil(doc.NegativeReasons),
		},
		Rejections: rejections,
		Diagnostics: model.Diagnostics{
			UnexplainedRejection: doc.Unexplained,
			ConfidenceNote:       doc.ConfidenceNote,
		},
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
