package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

var (
	loanConfidenceBase  = decimal.NewFromInt(90)
	loanConfidenceSpan  = decimal.NewFromInt(9)
	fdConfidenceCeiling = decimal.NewFromInt(100)
	fdSpreadPenalty     = decimal.NewFromInt(10)
)

// ConfidenceEstimator derives a bounded confidence from the oracle's own uncertainty.
type ConfidenceEstimator struct{}

func NewConfidenceEstimator() *ConfidenceEstimator {
	return &ConfidenceEstimator{}
}

// LoanConfidence compresses the eligibility classifier's top probability into [90, 99].
// A predictor without probabilities yields ConfidenceNotApplicable; a failing one
// yields ConfidenceUnavailable together with a ConfidenceUnavailableError.
func (e *ConfidenceEstimator) LoanConfidence(p port.Predictor, features model.ValidatedFeatures, predicted float64) (valueobject.Confidence, error) {
	pp, ok := p.(port.ProbabilityPredictor)
	if !ok {
		return valueobject.ConfidenceNotApplicable, nil
	}

	proba, err := pp.PredictProba(features)
	if err != nil {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{Err: err}
	}
	classes := pp.Classes()
	if len(proba) == 0 || len(proba) != len(classes) {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{
			Err: fmt.Errorf("got %d probabilities for %d classes", len(proba), len(classes)),
		}
	}

	top := maxProbability(proba)
	for i, c := range classes {
		if c == predicted {
			top = proba[i]
			break
		}
	}
	if math.IsNaN(top) || top < 0 || top > 1 {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{
			Err: fmt.Errorf("probability %v outside [0, 1]", top),
		}
	}

	pct := loanConfidenceBase.Add(decimal.NewFromFloat(top).Mul(loanConfidenceSpan)).Round(2)
	return valueobject.NewConfidence(pct)
}

// FDConfidence penalises disagreement among the ensemble's estimators:
// 100 minus ten times their population standard deviation, floored at zero.
func (e *ConfidenceEstimator) FDConfidence(p port.Predictor, features model.ValidatedFeatures) (valueobject.Confidence, error) {
	ep, ok := p.(port.EnsemblePredictor)
	if !ok {
		return valueobject.ConfidenceNotApplicable, nil
	}

	preds, err := ep.PredictPerEstimator(features)
	if err != nil {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{Err: err}
	}
	if len(preds) == 0 {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{
			Err: fmt.Errorf("ensemble returned no estimator predictions"),
		}
	}

	sd := populationStdDev(preds)
	if math.IsNaN(sd) || math.IsInf(sd, 0) {
		return valueobject.ConfidenceUnavailable, &model.ConfidenceUnavailableError{
			Err: fmt.Errorf("estimator spread is not finite"),
		}
	}

	pct := fdConfidenceCeiling.Sub(decimal.NewFromFloat(sd).Mul(fdSpreadPenalty)).Round(2)
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	return valueobject.NewConfidence(pct)
}

func maxProbability(proba []float64) float64 {
	top := proba[0]
	for _, p := range proba[1:] {
		if p > top {
			top = p
		}
	}
	return top
}

func populationStdDev(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}
