package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// TestMemoryRepository_Defaults asserts the bootstrap state of a fresh store.
func TestMemoryRepository_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	alarm, err := repo.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.AlarmStatusNoAlarm, alarm)

	arming, err := repo.ArmingStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ArmingStatusDisarmed, arming)

	sensors, err := repo.Sensors(ctx)
	require.NoError(t, err)
	require.Empty(t, sensors)
}

// TestMemoryRepository_Statuses verifies status writes are read back.
func TestMemoryRepository_Statuses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.SetAlarmStatus(ctx, domain.AlarmStatusPending))
	require.NoError(t, repo.SetArmingStatus(ctx, domain.ArmingStatusArmedAway))

	alarm, err := repo.AlarmStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.AlarmStatusPending, alarm)

	arming, err := repo.ArmingStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ArmingStatusArmedAway, arming)
}

// TestMemoryRepository_SensorLifecycle covers add, get, update and remove.
func TestMemoryRepository_SensorLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()
	sensor := domain.NewSensor("Front Door", domain.SensorTypeDoor)

	require.NoError(t, repo.AddSensor(ctx, sensor))

	stored, err := repo.Sensor(ctx, sensor.ID)
	require.NoError(t, err)
	require.Equal(t, sensor, stored)

	// Snapshots, not shared references.
	require.NotSame(t, sensor, stored)

	sensor.Active = true
	require.NoError(t, repo.UpdateSensor(ctx, sensor))

	stored, err = repo.Sensor(ctx, sensor.ID)
	require.NoError(t, err)
	require.True(t, stored.Active)

	require.NoError(t, repo.RemoveSensor(ctx, sensor.ID))

	_, err = repo.Sensor(ctx, sensor.ID)
	require.ErrorIs(t, err, ErrSensorNotFound)

	// Unknown keys.
	require.ErrorIs(t, repo.UpdateSensor(ctx, sensor), ErrSensorNotFound)
	require.NoError(t, repo.RemoveSensor(ctx, sensor.ID))
}
