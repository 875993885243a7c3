package oracle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/domain/valueobject"
)

// Manifest pins an artifact version and the checksum of every file in it.
type Manifest struct {
	Version  string                     `yaml:"version"`
	Profiles map[string]ProfileManifest `yaml:"profiles"`

	dir    string
	digest string
}

// ProfileManifest lists the encoder table and models serving one profile.
type ProfileManifest struct {
	Encoders ArtifactRef                    `yaml:"encoders"`
	Models   map[port.ModelRole]ArtifactRef `yaml:"models"`
}

// ArtifactRef points at a file relative to the manifest.
type ArtifactRef struct {
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
}

var requiredRoles = map[valueobject.Profile][]port.ModelRole{
	valueobject.ProfileFD:   {port.RoleRate},
	valueobject.ProfileLoan: {port.RoleEligibility, port.RoleRate, port.RoleAmount},
}

// ReadManifest loads and validates the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest validates raw manifest bytes; artifact paths resolve against dir.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	if err := validateYAML(manifestSchema, data); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	for name, pm := range m.Profiles {
		profile, err := valueobject.ProfileFromString(name)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		for _, role := range requiredRoles[profile] {
			if _, ok := pm.Models[role]; !ok {
				return nil, fmt.Errorf("manifest: profile %s has no %s model", name, role)
			}
		}
	}
	m.dir = dir
	m.digest = sha256Hex(data)
	return &m, nil
}

// Digest identifies the exact manifest bytes; a changed digest means a new snapshot.
func (m *Manifest) Digest() string { return m.digest }

// ProfileNames returns the served profiles in sorted order.
func (m *Manifest) ProfileNames() []string {
	names := make([]string, 0, len(m.Profiles))
	for name := range m.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manifest) resolve(ref ArtifactRef) string {
	if filepath.IsAbs(ref.Path) {
		return ref.Path
	}
	return filepath.Join(m.dir, ref.Path)
}
