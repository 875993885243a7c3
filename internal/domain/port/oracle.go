package port

//go:generate go tool mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks

import (
	"context"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Predictor is the capability every oracle model offers.
type Predictor interface {
	// Predict returns a regression value, or the predicted class label for classifiers.
	Predict(features model.ValidatedFeatures) (float64, error)
}

// ProbabilityPredictor is offered by classifiers.
type ProbabilityPredictor interface {
	Predictor
	// Classes lists the class labels in the order PredictProba reports them.
	Classes() []float64
	PredictProba(features model.ValidatedFeatures) ([]float64, error)
}

// EnsemblePredictor is offered by ensembles that expose member predictions.
type EnsemblePredictor interface {
	Predictor
	PredictPerEstimator(features model.ValidatedFeatures) ([]float64, error)
}

// ModelRole names a model's job within a profile's artifact set.
type ModelRole string

const (
	RoleRate        ModelRole = "rate"
	RoleEligibility ModelRole = "eligibility"
	RoleAmount      ModelRole = "amount"
)

// Oracle is one loaded, immutable artifact set serving a profile.
type Oracle interface {
	Version() string
	Encodings() model.EncodingTable
	Model(role ModelRole) (Predictor, bool)
}

// OracleProvider resolves the oracle currently serving a profile.
type OracleProvider interface {
	Current(profile valueobject.Profile) (Oracle, error)
}

// ReloadResult describes a completed artifact swap.
type ReloadResult struct {
	PreviousVersion string
	Version         string
	Profiles        []string
	Changed         bool
}

// OracleReloader re-reads the artifact manifest and swaps in a new snapshot.
type OracleReloader interface {
	Reload(ctx context.Context) (ReloadResult, error)
}
