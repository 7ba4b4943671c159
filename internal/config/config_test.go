package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks classifier selection and default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	require.Error(t, Validate(nil))

	// Empty config is filled with defaults.
	cfg := new(Config)

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultStateFilename, cfg.StateFile)
	require.Equal(t, ClassifierFake, cfg.Classifier)
	require.Equal(t, "info", cfg.LogLevel)

	// Rekognition gets a default region.
	cfg = &Config{Classifier: ClassifierRekognition}

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultAWSRegion, cfg.AWSRegion)

	// Unknown classifier.
	cfg = &Config{Classifier: "tarot"}
	require.Error(t, Validate(cfg))
}

// TestLoadMissingFile ensures a missing settings file yields defaults, not an error.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		StateFile:  filepath.Join(dir, "state.yaml"),
		Classifier: ClassifierRekognition,
		AWSRegion:  "eu-west-1",
		LogLevel:   "debug",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
