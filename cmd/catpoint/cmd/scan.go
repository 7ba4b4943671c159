package cmd

import (
	"fmt"
	"image"
	// Register decoders for the formats cameras typically produce.
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huylq94/uda-security/internal/logger"
)

// scanCmd feeds a camera image through the classifier and the engine.
var scanCmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Process a camera image and apply the cat-detection rules.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		file, err := os.Open(filepath.Clean(args[0]))
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}

		defer func() {
			_ = file.Close()
		}()

		img, _, err := image.Decode(file)
		if err != nil {
			return fmt.Errorf("decode image: %w", err)
		}

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		if err := engine.ProcessImage(ctx, img); err != nil {
			return fmt.Errorf("process image: %w", err)
		}

		return printStatus(ctx, cmd, engine)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(scanCmd)
}
