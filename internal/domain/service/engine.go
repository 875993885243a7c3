package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Stage is a step of one evaluation.
type Stage string

const (
	StageValidating Stage = "validating"
	StagePredicting Stage = "predicting"
	StageExplaining Stage = "explaining"
	StageFinalizing Stage = "finalizing"
)

// StageError records where an evaluation failed. The typed domain error stays
// reachable through errors.As.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return string(e.Stage) + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Evaluation is a successful engine run.
type Evaluation struct {
	Record        model.DecisionRecord
	OracleVersion string
}

// DecisionEngine runs normalization, prediction, categorization, confidence and
// explanation for one customer profile against the current oracle snapshot.
type DecisionEngine struct {
	oracles     port.OracleProvider
	normalizer  *FeatureNormalizer
	categorizer *Categorizer
	confidence  *ConfidenceEstimator
	explainer   *ExplanationGenerator
	logger      *slog.Logger
}

func NewDecisionEngine(oracles port.OracleProvider, logger *slog.Logger) *DecisionEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &DecisionEngine{
		oracles:     oracles,
		normalizer:  NewFeatureNormalizer(),
		categorizer: NewCategorizer(),
		confidence:  NewConfidenceEstimator(),
		explainer:   NewExplanationGenerator(),
		logger:      logger,
	}
}

// Evaluate returns either a complete record or an error, never both.
func (e *DecisionEngine) Evaluate(profile valueobject.Profile, raw map[string]any) (Evaluation, error) {
	// Validating
	if profile.IsZero() {
		return Evaluation{}, &StageError{Stage: StageValidating, Err: &model.ValidationError{Field: "profile", Reason: "profile is required"}}
	}
	oracle, err := e.oracles.Current(profile)
	if err != nil {
		return Evaluation{}, e.fail(StageValidating, profile, asOracleUnavailable(profile, err))
	}
	encodings := oracle.Encodings()
	for _, field := range encodings.Fields() {
		if !model.Declares(profile, field) {
			return Evaluation{}, e.fail(StageValidating, profile, &model.OracleUnavailableError{
				Profile: profile.String(),
				Reason:  "encoder field " + field + " is not part of the profile schema",
			})
		}
	}
	features, err := e.normalizer.Normalize(raw, profile, encodings)
	if err != nil {
		var oe *model.OracleUnavailableError
		if errors.As(err, &oe) && oe.Profile == "" {
			oe.Profile = profile.String()
		}
		return Evaluation{}, e.fail(StageValidating, profile, err)
	}

	// Predicting
	var record model.DecisionRecord
	if profile.IsLoan() {
		record, err = e.predictLoan(oracle, features)
	} else {
		record, err = e.predictFD(oracle, features)
	}
	if err != nil {
		return Evaluation{}, e.fail(StagePredicting, profile, err)
	}

	// Explaining
	explanation, err := e.explainer.Explain(features)
	if err != nil {
		return Evaluation{}, e.fail(StageExplaining, profile, err)
	}
	record.Explanation = explanation
	if profile.IsLoan() && !record.Prediction.Eligible {
		record.Rejections = RejectionReasons(features)
	}

	// Finalizing
	if profile.IsLoan() && !record.Prediction.Eligible && len(record.Rejections) == 0 {
		record.Diagnostics.UnexplainedRejection = true
		e.logger.Warn("loan declined without a matching rejection rule",
			"stage", StageFinalizing,
			"oracle_version", oracle.Version(),
		)
	}

	return Evaluation{Record: record, OracleVersion: oracle.Version()}, nil
}

func (e *DecisionEngine) predictFD(oracle port.Oracle, f model.ValidatedFeatures) (model.DecisionRecord, error) {
	rateModel, ok := oracle.Model(port.RoleRate)
	if !ok {
		return model.DecisionRecord{}, missingModel(f.Profile, port.RoleRate)
	}
	raw, err := predict(rateModel, f)
	if err != nil {
		return model.DecisionRecord{}, asOracleUnavailable(f.Profile, err)
	}

	record := model.DecisionRecord{
		Prediction: model.PredictionResult{
			Profile:   f.Profile,
			Eligible:  true,
			Rate:      decimal.NewFromFloat(raw).Round(2),
			MaxAmount: decimal.Zero,
		},
	}
	// FD tiers read the raw prediction; 8.996 is still High-Value.
	record.Tier = e.categorizer.Categorize(decimal.NewFromFloat(raw), f.Profile)
	record.Confidence, err = e.confidence.FDConfidence(rateModel, f)
	e.noteConfidence(&record, err)
	return record, nil
}

func (e *DecisionEngine) predictLoan(oracle port.Oracle, f model.ValidatedFeatures) (model.DecisionRecord, error) {
	classifier, ok := oracle.Model(port.RoleEligibility)
	if !ok {
		return model.DecisionRecord{}, missingModel(f.Profile, port.RoleEligibility)
	}
	label, err := predict(classifier, f)
	if err != nil {
		return model.DecisionRecord{}, asOracleUnavailable(f.Profile, err)
	}

	record := model.DecisionRecord{
		Prediction: model.PredictionResult{
			Profile:   f.Profile,
			Eligible:  label == 1,
			Rate:      decimal.Zero,
			MaxAmount: decimal.Zero,
		},
	}
	record.Confidence, err = e.confidence.LoanConfidence(classifier, f, label)
	e.noteConfidence(&record, err)

	if !record.Prediction.Eligible {
		record.Tier = e.categorizer.Categorize(record.Prediction.Rate, f.Profile)
		return record, nil
	}

	rateModel, ok := oracle.Model(port.RoleRate)
	if !ok {
		return model.DecisionRecord{}, missingModel(f.Profile, port.RoleRate)
	}
	amountModel, ok := oracle.Model(port.RoleAmount)
	if !ok {
		return model.DecisionRecord{}, missingModel(f.Profile, port.RoleAmount)
	}
	rate, err := predict(rateModel, f)
	if err != nil {
		return model.DecisionRecord{}, asOracleUnavailable(f.Profile, err)
	}
	amount, err := predict(amountModel, f)
	if err != nil {
		return model.DecisionRecord{}, asOracleUnavailable(f.Profile, err)
	}

	record.Prediction.Rate = decimal.NewFromFloat(rate).Round(2)
	record.Prediction.MaxAmount = decimal.NewFromFloat(amount).Truncate(0)
	if record.Prediction.MaxAmount.IsNegative() {
		record.Prediction.MaxAmount = decimal.Zero
	}
	// Loan tiers read the rate as quoted, rounded to cents.
	record.Tier = e.categorizer.Categorize(record.Prediction.Rate, f.Profile)
	return record, nil
}

func (e *DecisionEngine) noteConfidence(record *model.DecisionRecord, err error) {
	if err == nil {
		return
	}
	record.Diagnostics.ConfidenceNote = err.Error()
	e.logger.Warn("confidence estimate unavailable",
		"profile", record.Prediction.Profile.String(),
		"error", err,
	)
}

func (e *DecisionEngine) fail(stage Stage, profile valueobject.Profile, err error) error {
	if errors.Is(err, model.ErrOracleUnavailable) {
		e.logger.Error("decision evaluation failed", "stage", stage, "profile", profile.String(), "error", err)
	} else {
		e.logger.Debug("decision evaluation rejected", "stage", stage, "profile", profile.String(), "error", err)
	}
	return &StageError{Stage: stage, Err: err}
}

func predict(p port.Predictor, f model.ValidatedFeatures) (float64, error) {
	v, err := p.Predict(f)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite prediction %v", v)
	}
	return v, nil
}

func missingModel(profile valueobject.Profile, role port.ModelRole) error {
	return &model.OracleUnavailableError{Profile: profile.String(), Reason: "no " + string(role) + " model loaded"}
}

func asOracleUnavailable(profile valueobject.Profile, err error) error {
	if errors.Is(err, model.ErrOracleUnavailable) {
		return err
	}
	return &model.OracleUnavailableError{Profile: profile.String(), Err: err}
}
