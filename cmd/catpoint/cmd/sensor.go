package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/huylq94/uda-security/internal/domain/security"
	"github.com/huylq94/uda-security/internal/logger"
	"github.com/huylq94/uda-security/internal/service/security"
)

// sensorType holds the --type flag value for `sensor add`.
var sensorType string

// sensorCmd groups the sensor lifecycle subcommands.
var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Manage sensors.",
}

// sensorAddCmd registers a new sensor.
var sensorAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new sensor.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		kind, ok := domain.ParseSensorType(strings.ToUpper(sensorType))
		if !ok {
			return fmt.Errorf("unknown sensor type: %s", sensorType)
		}

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		sensor := domain.NewSensor(args[0], kind)
		if err := engine.AddSensor(ctx, sensor); err != nil {
			return fmt.Errorf("add sensor: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added sensor %s (%s)\n", sensor.Name, sensor.ID)

		return nil
	},
}

// sensorRemoveCmd removes a sensor.
var sensorRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Remove a sensor.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		sensor, err := findSensor(ctx, engine, args[0])
		if err != nil {
			return err
		}

		if err := engine.RemoveSensor(ctx, sensor.ID); err != nil {
			return fmt.Errorf("remove sensor: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed sensor %s\n", sensor.Name)

		return nil
	},
}

// sensorActivateCmd marks a sensor active and lets the engine decide the alarm.
var sensorActivateCmd = &cobra.Command{
	Use:   "activate <id-or-name>",
	Short: "Activate a sensor.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeSensor(cmd, args[0], true)
	},
}

// sensorDeactivateCmd marks a sensor inactive and lets the engine decide the alarm.
var sensorDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id-or-name>",
	Short: "Deactivate a sensor.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeSensor(cmd, args[0], false)
	},
}

// sensorReconcileCmd re-evaluates the alarm for a sensor without changing it.
var sensorReconcileCmd = &cobra.Command{
	Use:   "reconcile <id-or-name>",
	Short: "Re-evaluate the alarm against a sensor without changing its activation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		sensor, err := findSensor(ctx, engine, args[0])
		if err != nil {
			return err
		}

		if err := engine.ReconcileSensorStatus(ctx, sensor); err != nil {
			return fmt.Errorf("reconcile sensor: %w", err)
		}

		return printStatus(ctx, cmd, engine)
	},
}

// sensorListCmd prints the sensor table.
var sensorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sensors.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := logger.WithName(cmd.Context(), "catpoint")

		engine, err := buildEngine(ctx)
		if err != nil {
			return err
		}

		return printStatus(ctx, cmd, engine)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	sensorAddCmd.Flags().
		StringVarP(&sensorType, "type", "t", "door", "sensor type: door, window or motion")

	sensorCmd.AddCommand(sensorAddCmd, sensorRemoveCmd, sensorActivateCmd,
		sensorDeactivateCmd, sensorReconcileCmd, sensorListCmd)
	rootCmd.AddCommand(sensorCmd)
}

// changeSensor applies an explicit activation value and prints the outcome.
func changeSensor(cmd *cobra.Command, key string, active bool) error {
	ctx := logger.WithName(cmd.Context(), "catpoint")

	engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	sensor, err := findSensor(ctx, engine, key)
	if err != nil {
		return err
	}

	if err := engine.ChangeSensorActivationStatus(ctx, sensor, active); err != nil {
		return fmt.Errorf("change sensor activation: %w", err)
	}

	return printStatus(ctx, cmd, engine)
}

// findSensor resolves a sensor by exact ID or, failing that, by name.
func findSensor(ctx context.Context, engine *security.Service, key string) (*domain.Sensor, error) {
	sensors, err := engine.Sensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}

	for _, sensor := range sensors {
		if sensor.ID == key {
			return sensor, nil
		}
	}

	for _, sensor := range sensors {
		if strings.EqualFold(sensor.Name, key) {
			return sensor, nil
		}
	}

	return nil, fmt.Errorf("no sensor matches %q", key)
}
