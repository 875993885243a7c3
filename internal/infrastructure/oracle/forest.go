package oracle

import (
	"encoding/json"
	"fmt"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
)

const leafMarker = -1

// modelDoc is the serialized form of a fitted tree model: the node arrays of
// each tree in depth-first order, as exported from a scikit-learn estimator.
type modelDoc struct {
	Kind     string     `json:"kind"`
	Ensemble bool       `json:"ensemble"`
	Features []string   `json:"features"`
	Classes  []float64  `json:"classes,omitempty"`
	Scaler   *scalerDoc `json:"scaler,omitempty"`
	Trees    []treeDoc  `json:"trees"`
}

type scalerDoc struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type treeDoc struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

type tree struct {
	left      []int
	right     []int
	feature   []int
	threshold []float64
	value     [][]float64
}

// leaf walks from the root; samples go left when x[feature] <= threshold.
func (t *tree) leaf(x []float64) []float64 {
	node := 0
	for t.left[node] != leafMarker {
		if x[t.feature[node]] <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.value[node]
}

func newTree(doc treeDoc, nFeatures, width int) (*tree, error) {
	n := len(doc.ChildrenLeft)
	if len(doc.ChildrenRight) != n || len(doc.Feature) != n || len(doc.Threshold) != n || len(doc.Value) != n {
		return nil, fmt.Errorf("node arrays have different lengths")
	}
	for i := 0; i < n; i++ {
		l, r := doc.ChildrenLeft[i], doc.ChildrenRight[i]
		if l == leafMarker {
			if r != leafMarker {
				return nil, fmt.Errorf("node %d has only one child", i)
			}
			if len(doc.Value[i]) != width {
				return nil, fmt.Errorf("leaf %d has %d values, want %d", i, len(doc.Value[i]), width)
			}
			continue
		}
		// Children always follow their parent, so every walk terminates.
		if l <= i || r <= i || l >= n || r >= n {
			return nil, fmt.Errorf("node %d has out-of-order children %d/%d", i, l, r)
		}
		if f := doc.Feature[i]; f < 0 || f >= nFeatures {
			return nil, fmt.Errorf("node %d splits on feature %d of %d", i, f, nFeatures)
		}
	}
	return &tree{
		left:      doc.ChildrenLeft,
		right:     doc.ChildrenRight,
		feature:   doc.Feature,
		threshold: doc.Threshold,
		value:     doc.Value,
	}, nil
}

// base holds what every tree model shares: its input schema and members.
type base struct {
	profile  string
	features []string
	scaler   *scalerDoc
	trees    []*tree
}

// vector lays the validated features out in the model's training order.
func (b *base) vector(f model.ValidatedFeatures) ([]float64, error) {
	x := make([]float64, len(b.features))
	for i, name := range b.features {
		v, ok := f.Numeric(name)
		if !ok {
			return nil, &model.OracleUnavailableError{
				Profile: b.profile,
				Reason:  "model expects feature " + name + " which the input does not carry",
			}
		}
		if b.scaler != nil {
			v = (v - b.scaler.Mean[i]) / b.scaler.Scale[i]
		}
		x[i] = v
	}
	return x, nil
}

func (b *base) perTree(f model.ValidatedFeatures) ([]float64, error) {
	x, err := b.vector(f)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(b.trees))
	for i, t := range b.trees {
		out[i] = t.leaf(x)[0]
	}
	return out, nil
}

// Regressor averages its trees' leaf values.
type Regressor struct {
	base
}

func (r *Regressor) Predict(f model.ValidatedFeatures) (float64, error) {
	preds, err := r.perTree(f)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range preds {
		sum += p
	}
	return sum / float64(len(preds)), nil
}

// ForestRegressor also exposes member predictions.
type ForestRegressor struct {
	Regressor
}

func (r *ForestRegressor) PredictPerEstimator(f model.ValidatedFeatures) ([]float64, error) {
	return r.perTree(f)
}

// Classifier averages the normalised class distributions of its trees.
type Classifier struct {
	base
	classes []float64
}

func (c *Classifier) Classes() []float64 {
	return append([]float64(nil), c.classes...)
}

func (c *Classifier) PredictProba(f model.ValidatedFeatures) ([]float64, error) {
	x, err := c.vector(f)
	if err != nil {
		return nil, err
	}
	proba := make([]float64, len(c.classes))
	for _, t := range c.trees {
		dist := t.leaf(x)
		var total float64
		for _, v := range dist {
			total += v
		}
		if total <= 0 {
			return nil, fmt.Errorf("empty class distribution at leaf")
		}
		for i, v := range dist {
			proba[i] += v / total
		}
	}
	for i := range proba {
		proba[i] /= float64(len(c.trees))
	}
	return proba, nil
}

// Predict returns the label of the most probable class; ties go to the first.
func (c *Classifier) Predict(f model.ValidatedFeatures) (float64, error) {
	proba, err := c.PredictProba(f)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return c.classes[best], nil
}

// decodeModel builds a predictor from a schema-valid document.
func decodeModel(data []byte, profile string) (port.Predictor, error) {
	if err := validateJSON(modelSchema, data); err != nil {
		return nil, err
	}
	var doc modelDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	nFeatures := len(doc.Features)
	if doc.Scaler != nil {
		if len(doc.Scaler.Mean) != nFeatures || len(doc.Scaler.Scale) != nFeatures {
			return nil, fmt.Errorf("scaler covers %d/%d of %d features", len(doc.Scaler.Mean), len(doc.Scaler.Scale), nFeatures)
		}
		for i, s := range doc.Scaler.Scale {
			if s == 0 {
				return nil, fmt.Errorf("scaler has zero scale for %s", doc.Features[i])
			}
		}
	}

	width := 1
	if doc.Kind == "classifier" {
		width = len(doc.Classes)
	}
	trees := make([]*tree, 0, len(doc.Trees))
	for i, td := range doc.Trees {
		t, err := newTree(td, nFeatures, width)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees = append(trees, t)
	}

	b := base{profile: profile, features: doc.Features, scaler: doc.Scaler, trees: trees}
	switch {
	case doc.Kind == "classifier":
		return &Classifier{base: b, classes: doc.Classes}, nil
	case doc.Ensemble:
		return &ForestRegressor{Regressor{base: b}}, nil
	default:
		return &Regressor{base: b}, nil
	}
}
