package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/huylq94/uda-security/internal/domain/security"
	"github.com/huylq94/uda-security/internal/logger"
)

// armModes maps CLI arguments to arming statuses.
var armModes = map[string]domain.ArmingStatus{
	"home": domain.ArmingStatusArmedHome,
	"away": domain.ArmingStatusArmedAway,
	"off":  domain.ArmingStatusDisarmed,
}

// armCmd changes the arming mode of the system.
var armCmd = &cobra.Command{
	Use:   "arm home|away|off",
	Short: "Change the arming mode.",
	Long: `Changes the arming mode of the system.

Disarming always clears the alarm. Arming deactivates every active sensor
first; arming for home occupancy right after a camera scan saw a cat raises
the alarm immediately.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"home", "away", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		mode, ok := armModes[args[0]]
		if !ok {
			return fmt.Errorf("unknown arming mode: %s", args[0])
		}

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		if err := engine.SetArmingStatus(ctx, mode); err != nil {
			return fmt.Errorf("set arming status: %w", err)
		}

		return printStatus(ctx, cmd, engine)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(armCmd)
}
