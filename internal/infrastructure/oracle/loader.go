package oracle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

const maxArtifactSize = 64 << 20

// Snapshot is an immutable set of loaded oracles, one per profile.
type Snapshot struct {
	version string
	digest  string
	sets    map[string]*artifactSet
}

// Version is the manifest version suffixed with a short digest, so that a
// re-published manifest under the same version still yields a new key.
func (s *Snapshot) Version() string { return s.version }

func (s *Snapshot) Digest() string { return s.digest }

func (s *Snapshot) Profiles() []string {
	names := make([]string, 0, len(s.sets))
	for name := range s.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Oracle returns the artifact set serving profile.
func (s *Snapshot) Oracle(profile valueobject.Profile) (port.Oracle, bool) {
	set, ok := s.sets[profile.Key()]
	if !ok {
		return nil, false
	}
	return set, true
}

type artifactSet struct {
	version   string
	encodings model.EncodingTable
	models    map[port.ModelRole]port.Predictor
}

func (a *artifactSet) Version() string { return a.version }
func (a *artifactSet) Encodings() model.EncodingTable { return a.encodings }

func (a *artifactSet) Model(role port.ModelRole) (port.Predictor, bool) {
	p, ok := a.models[role]
	return p, ok
}

type encodersDoc struct {
	Fields map[string][]string `json:"fields"`
}

// Loader reads the artifacts a manifest names.
type Loader struct {
	decoder *zstd.Decoder
}

func NewLoader() (*Loader, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxArtifactSize))
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Loader{decoder: dec}, nil
}

func (l *Loader) Close() {
	l.decoder.Close()
}

type loadJob struct {
	profile valueobject.Profile
	role    port.ModelRole // empty for the encoder table
	ref     ArtifactRef
}

// Load verifies and decodes every artifact in the manifest concurrently.
// Any failure aborts the whole snapshot.
func (l *Loader) Load(ctx context.Context, m *Manifest) (*Snapshot, error) {
	var jobs []loadJob
	for _, name := range m.ProfileNames() {
		profile, err := valueobject.ProfileFromString(name)
		if err != nil {
			return nil, err
		}
		pm := m.Profiles[name]
		jobs = append(jobs, loadJob{profile: profile, ref: pm.Encoders})
		for role, ref := range pm.Models {
			jobs = append(jobs, loadJob{profile: profile, role: role, ref: ref})
		}
	}

	encodings := make([]model.EncodingTable, len(jobs))
	predictors := make([]port.Predictor, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := l.readArtifact(m.resolve(job.ref), job.ref.SHA256)
			if err != nil {
				return fmt.Errorf("%s %s: %w", job.profile.Key(), describe(job), err)
			}
			if job.role == "" {
				table, err := decodeEncoders(data, job.profile)
				if err != nil {
					return fmt.Errorf("%s encoders: %w", job.profile.Key(), err)
				}
				encodings[i] = table
				return nil
			}
			p, err := decodeModel(data, job.profile.Key())
			if err != nil {
				return fmt.Errorf("%s %s model: %w", job.profile.Key(), job.role, err)
			}
			if err := checkModelFeatures(p, job.profile); err != nil {
				return fmt.Errorf("%s %s model: %w", job.profile.Key(), job.role, err)
			}
			predictors[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	version := m.Version
	if len(m.digest) >= 12 {
		version += "+" + m.digest[:12]
	}
	snap := &Snapshot{version: version, digest: m.digest, sets: make(map[string]*artifactSet)}
	for i, job := range jobs {
		set, ok := snap.sets[job.profile.Key()]
		if !ok {
			set = &artifactSet{version: version, models: make(map[port.ModelRole]port.Predictor)}
			snap.sets[job.profile.Key()] = set
		}
		if job.role == "" {
			set.encodings = encodings[i]
		} else {
			set.models[job.role] = predictors[i]
		}
	}
	return snap, nil
}

func describe(job loadJob) string {
	if job.role == "" {
		return "encoders"
	}
	return string(job.role) + " model"
}

// readArtifact checks the digest of the bytes on disk, then inflates .zst files.
func (l *Loader) readArtifact(path, want string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat artifact: %w", err)
	}
	if info.Size() > maxArtifactSize {
		return nil, fmt.Errorf("artifact %s is %d bytes, limit %d", path, info.Size(), maxArtifactSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if got := sha256Hex(data); got != want {
		return nil, fmt.Errorf("checksum mismatch for %s: got %s, want %s", path, got, want)
	}
	if strings.HasSuffix(path, ".zst") {
		data, err = l.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	return data, nil
}

func decodeEncoders(data []byte, profile valueobject.Profile) (model.EncodingTable, error) {
	if err := validateJSON(encodersSchema, data); err != nil {
		return model.EncodingTable{}, err
	}
	var doc encodersDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.EncodingTable{}, fmt.Errorf("decode encoders: %w", err)
	}
	for field, classes := range doc.Fields {
		if !model.Declares(profile, field) {
			return model.EncodingTable{}, fmt.Errorf("field %s is not part of the %s schema", field, profile)
		}
		// Label encoders assign codes in sorted class order.
		if !sort.StringsAreSorted(classes) {
			return model.EncodingTable{}, fmt.Errorf("classes for %s are not sorted", field)
		}
	}
	return model.NewEncodingTable(doc.Fields), nil
}

func checkModelFeatures(p port.Predictor, profile valueobject.Profile) error {
	var features []string
	switch m := p.(type) {
	case *Regressor:
		features = m.features
	case *ForestRegressor:
		features = m.features
	case *Classifier:
		features = m.features
	}
	for _, name := range features {
		if !model.Declares(profile, name) {
			return fmt.Errorf("feature %s is not part of the %s schema", name, profile)
		}
	}
	return nil
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
