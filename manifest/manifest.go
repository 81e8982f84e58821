// Package manifest handles braingo.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/braingo/pkg/interp"
)

// Manifest represents a braingo.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Run     Run     `toml:"run"`

	// Dir is the directory containing the braingo.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Run configures interpreter defaults; explicit CLI flags win over these.
type Run struct {
	MemorySize       int    `toml:"memory-size"`
	InstructionLimit uint64 `toml:"instruction-limit"`
	Arithmetic       string `toml:"arithmetic"`
}

// Load parses a braingo.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "braingo.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if err := m.validate(path); err != nil {
		return nil, err
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a braingo.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "braingo.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// validate applies the same bounds the CLI flags enforce. Zero values mean
// "not set" and are left for the defaults.
func (m *Manifest) validate(path string) error {
	if s := m.Run.MemorySize; s != 0 && (s < interp.MinTapeSize || s > interp.MaxTapeSize) {
		return fmt.Errorf("%s: memory-size %d out of range [%d, %d]",
			path, s, interp.MinTapeSize, interp.MaxTapeSize)
	}
	if l := m.Run.InstructionLimit; l != 0 && (l < interp.MinStepLimit || l > interp.MaxStepLimit) {
		return fmt.Errorf("%s: instruction-limit %d out of range [%d, %d]",
			path, l, interp.MinStepLimit, interp.MaxStepLimit)
	}
	if _, err := interp.ParseArithmeticPolicy(m.Run.Arithmetic); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
