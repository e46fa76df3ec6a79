package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FlappyFile is the file name looked up in the search directories.
const FlappyFile = "flappy.yaml"

// source is one place a config may come from. Optional sources that do
// not exist are skipped; a required one must be readable.
type source struct {
	name     string
	read     func() ([]byte, error)
	required bool
}

func fileSource(path string, required bool) source {
	return source{name: path, read: func() ([]byte, error) { return os.ReadFile(path) }, required: required}
}

// flappySources lists where LoadFlappy looks. An explicit path replaces
// the search directories; otherwise the user directory wins over ./configs.
func flappySources(customPath string) []source {
	if customPath != "" {
		return []source{fileSource(customPath, true)}
	}
	var out []source
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, fileSource(filepath.Join(home, ".arcade", "configs", FlappyFile), false))
	}
	return append(out, fileSource(filepath.Join("configs", FlappyFile), false))
}

// LoadFlappy returns the validated Flappy config. The embedded defaults
// come first and the first config file found is laid over them, so a file
// only lists the keys it changes. Unknown keys are rejected.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return loadFlappy(flappySources(customPath))
}

func loadFlappy(sources []source) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := decodeInto(&cfg, defaultFlappyYAML); err != nil {
		return cfg, fmt.Errorf("config: embedded %s: %w", FlappyFile, err)
	}

	name := "embedded"
	for _, src := range sources {
		data, err := src.read()
		if errors.Is(err, fs.ErrNotExist) && !src.required {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", src.name, err)
		}
		if err := decodeInto(&cfg, data); err != nil {
			return cfg, fmt.Errorf("config %s: %w: %w", src.name, ErrInvalidConfig, err)
		}
		name = src.name
		break
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// decodeInto overlays YAML onto cfg. An empty document changes nothing.
func decodeInto(cfg *FlappyConfig, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyFlappyPreset switches difficulty according to preset. The empty
// preset keeps whatever the file says.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// MarshalFlappy encodes cfg as YAML with two-space indentation.
func MarshalFlappy(cfg FlappyConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return buf.Bytes(), nil
}
