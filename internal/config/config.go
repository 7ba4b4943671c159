package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings shared by the catpoint commands.
type Config struct {
	// StateFile is the path to the YAML file storing security state.
	StateFile string `yaml:"state_file"`
	// Classifier selects the image classifier: ClassifierFake or ClassifierRekognition.
	Classifier string `yaml:"classifier"`
	// AWSRegion is the region used by the Rekognition classifier.
	AWSRegion string `yaml:"aws_region"`
	// FakeSeed seeds the fake classifier so runs can be reproduced.
	FakeSeed int64 `yaml:"fake_seed"`
	// LogLevel is the minimum level emitted by the logger.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for runtime settings.
	DefaultConfigFilename = "catpoint-settings.yaml"

	// DefaultStateFilename is the default filename for security state YAML.
	DefaultStateFilename = "catpoint-state.yaml"

	// ClassifierFake selects the coin-flip classifier.
	ClassifierFake = "fake"

	// ClassifierRekognition selects the AWS Rekognition classifier.
	ClassifierRekognition = "rekognition"

	// DefaultAWSRegion is used when the Rekognition classifier has no region configured.
	DefaultAWSRegion = "us-east-1"

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownClassifier is returned when the classifier selection is not recognized.
	errUnknownClassifier = errors.New("unknown classifier")
)

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		StateFile:  DefaultStateFilename,
		Classifier: ClassifierFake,
		LogLevel:   "info",
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file is not an error; defaults are returned instead so the CLI
// works out of the box.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.Classifier {
	case "":
		cfg.Classifier = ClassifierFake
	case ClassifierFake:
	case ClassifierRekognition:
		if cfg.AWSRegion == "" {
			cfg.AWSRegion = DefaultAWSRegion
		}
	default:
		return fmt.Errorf("%w: %s", errUnknownClassifier, cfg.Classifier)
	}

	return nil
}
