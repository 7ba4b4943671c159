package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/huylq94/uda-security/internal/logger"
	"github.com/huylq94/uda-security/internal/service/security"
)

// statusCmd prints the current system state.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show alarm status, arming mode and sensors.",
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
	rootCmd.AddCommand(statusCmd)
}

// printStatus renders the statuses and the sensor table to the command output.
func printStatus(ctx context.Context, cmd *cobra.Command, engine *security.Service) error {
	alarm, err := engine.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("get alarm status: %w", err)
	}

	arming, err := engine.ArmingStatus(ctx)
	if err != nil {
		return fmt.Errorf("get arming status: %w", err)
	}

	sensors, err := engine.Sensors(ctx)
	if err != nil {
		return fmt.Errorf("list sensors: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Arming: %s\n", arming.Description())
	fmt.Fprintf(out, "Alarm:  %s (%s)\n", alarm, alarm.Description())

	if len(sensors) == 0 {
		fmt.Fprintln(out, "No sensors registered.")

		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Active"})

	for _, sensor := range sensors {
		t.AppendRow(table.Row{sensor.ID, sensor.Name, sensor.Type, sensor.Active})
	}

	t.SortBy([]table.SortBy{{Name: "Name", Mode: table.Asc}})
	t.Render()

	return nil
}
