package service_test

import (
	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
)

type fakeRegressor struct {
	predictFn func(model.ValidatedFeatures) (float64, error)
}

func (f *fakeRegressor) Predict(x model.ValidatedFeatures) (float64, error) {
	return f.predictFn(x)
}

type fakeEnsemble struct {
	fakeRegressor
	perEstimatorFn func(model.ValidatedFeatures) ([]float64, error)
}

func (f *fakeEnsemble) PredictPerEstimator(x model.ValidatedFeatures) ([]float64, error) {
	return f.perEstimatorFn(x)
}

type fakeClassifier struct {
	fakeRegressor
	classes []float64
	probaFn func(model.ValidatedFeatures) ([]float64, error)
}

func (f *fakeClassifier) Classes() []float64 { return f.classes }

func (f *fakeClassifier) PredictProba(x model.ValidatedFeatures) ([]float64, error) {
	return f.probaFn(x)
}

func constant(v float64) *fakeRegressor {
	return &fakeRegressor{predictFn: func(model.ValidatedFeatures) (float64, error) { return v, nil }}
}

func ensemble(mean float64, members ...float64) *fakeEnsemble {
	return &fakeEnsemble{
		fakeRegressor:  *constant(mean),
		perEstimatorFn: func(model.ValidatedFeatures) ([]float64, error) { return members, nil },
	}
}

// classifier predicts label with the given probability distribution over [0, 1].
func classifier(label float64, proba ...float64) *fakeClassifier {
	return &fakeClassifier{
		fakeRegressor: *constant(label),
		classes:       []float64{0, 1},
		probaFn:       func(model.ValidatedFeatures) ([]float64, error) { return proba, nil },
	}
}

type fakeOracle struct {
	version   string
	encodings model.EncodingTable
	models    map[port.ModelRole]port.Predictor
}

func (o *fakeOracle) Version() string { return o.version }

func (o *fakeOracle) Encodings() model.EncodingTable { return o.encodings }

func (o *fakeOracle) Model(role port.ModelRole) (port.Predictor, bool) {
	p, ok := o.models[role]
	return p, ok
}

func fdEncodings() model.EncodingTable {
	return model.NewEncodingTable(map[string][]string{
		model.FieldPastTransactions: {"Negative", "Neutral", "Positive"},
		model.FieldMarketTrends:     {"Favorable", "Neutral", "Unfavorable"},
	})
}

func loanEncodings() model.EncodingTable {
	return model.NewEncodingTable(map[string][]string{
		model.FieldPastTransactions: {"Negative", "Positive"},
		model.FieldMarketTrends:     {"Favorable", "Neutral", "Unfavorable"},
	})
}

func fdInput() map[string]any {
	return map[string]any{
		model.FieldCreditHistory:     780,
		model.FieldRiskRating:        8,
		model.FieldAge:               29,
		model.FieldRelationshipYears: 12,
		model.FieldPastTransactions:  "Positive",
		model.FieldMarketTrends:      "Favorable",
	}
}

func loanInput() map[string]any {
	return map[string]any{
		model.FieldCreditHistory:       720,
		model.FieldFamilyCreditHistory: 680,
		model.FieldRiskRating:          18,
		model.FieldAge:                 41,
		model.FieldRelationshipYears:   6,
		model.FieldPastTransactions:    "Positive",
		model.FieldMarketTrends:        "Neutral",
	}
}
