package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseAlarmStatus verifies mapping from strings to AlarmStatus and handling of unknown values.
func TestParseAlarmStatus(t *testing.T) {
	t.Parallel()

	for _, want := range []AlarmStatus{AlarmStatusNoAlarm, AlarmStatusPending, AlarmStatusAlarm} {
		got, ok := ParseAlarmStatus(string(want))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := ParseAlarmStatus("RED_ALERT")
	require.False(t, ok)
}

// TestParseArmingStatus verifies mapping from strings to ArmingStatus and handling of unknown values.
func TestParseArmingStatus(t *testing.T) {
	t.Parallel()

	for _, want := range []ArmingStatus{ArmingStatusDisarmed, ArmingStatusArmedHome, ArmingStatusArmedAway} {
		got, ok := ParseArmingStatus(string(want))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := ParseArmingStatus("ARMED_VACATION")
	require.False(t, ok)
}

// TestDescriptions ensures every enum value renders a non-default description.
func TestDescriptions(t *testing.T) {
	t.Parallel()

	for _, s := range []AlarmStatus{AlarmStatusNoAlarm, AlarmStatusPending, AlarmStatusAlarm} {
		require.NotEqual(t, "Unknown", s.Description())
	}

	for _, s := range []ArmingStatus{ArmingStatusDisarmed, ArmingStatusArmedHome, ArmingStatusArmedAway} {
		require.NotEqual(t, "Unknown", s.Description())
	}

	require.Equal(t, "Unknown", AlarmStatus("???").Description())
	require.Equal(t, "Unknown", ArmingStatus("???").Description())
}
