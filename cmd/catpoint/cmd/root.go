package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huylq94/uda-security/internal/config"
	"github.com/huylq94/uda-security/internal/logger"
	repository "github.com/huylq94/uda-security/internal/repository/security"
	"github.com/huylq94/uda-security/internal/service/image"
	"github.com/huylq94/uda-security/internal/service/monitor"
	"github.com/huylq94/uda-security/internal/service/security"
	"github.com/huylq94/uda-security/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where security state is persisted.
	stateFile string
	// logLevel overrides the configured logging level.
	logLevel string

	// rootCmd represents the base command for the catpoint CLI.
	rootCmd = &cobra.Command{
		Use:   "catpoint",
		Short: "Control the catpoint home security system.",
		Long: `Drives the catpoint alarm engine from the command line.

Sensors, arming mode and alarm status are persisted to a YAML state file so
consecutive invocations operate on the same system. Camera images are judged
by the configured classifier (a fake coin flip by default, AWS Rekognition
when configured).`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}

			lvl, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level: %s", logLevel)
			}

			logger.SetLevel(lvl)

			return nil
		},
	}
)

// Execute runs the catpoint CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&stateFile, "state-file", "s", "", "path to persist security state (overrides config)")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "logging level (overrides config)")
}

// buildEngine loads settings and wires the repository, the classifier and
// the alarm engine, with the console monitor already registered.
func buildEngine(ctx context.Context) (*security.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if logLevel == "" {
		if lvl, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
			logger.SetLevel(lvl)
		}
	}

	statePath := cfg.StateFile
	if stateFile != "" {
		statePath = stateFile
	}

	repo, err := repository.NewFileRepository(statePath)
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}

	var classifier image.Classifier

	switch cfg.Classifier {
	case config.ClassifierRekognition:
		classifier, err = image.NewRekognitionClassifier(cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("create classifier: %w", err)
		}
	default:
		seed := cfg.FakeSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		classifier = image.NewFakeClassifier(seed)
	}

	engine := security.NewService(repo, classifier)
	engine.AddStatusListener(monitor.NewListener(logger.FromContext(ctx)))

	return engine, nil
}
