package security

import (
	"context"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// MemoryRepository keeps the full security state in memory.
// It bootstraps to a disarmed system with no alarm and no sensors.
type MemoryRepository struct {
	// sensors holds sensor snapshots keyed by sensor ID.
	sensors cmap.ConcurrentMap[string, *domain.Sensor]
	// mu protects the two status fields.
	mu sync.RWMutex
	// alarmStatus is the current alert level.
	alarmStatus domain.AlarmStatus
	// armingStatus is the current arming mode.
	armingStatus domain.ArmingStatus
}

// NewMemoryRepository creates an in-memory repository with default state.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sensors:      cmap.New[*domain.Sensor](),
		alarmStatus:  domain.AlarmStatusNoAlarm,
		armingStatus: domain.ArmingStatusDisarmed,
	}
}

// AlarmStatus returns the current alert level.
func (r *MemoryRepository) AlarmStatus(_ context.Context) (domain.AlarmStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.alarmStatus, nil
}

// SetAlarmStatus stores a new alert level.
func (r *MemoryRepository) SetAlarmStatus(_ context.Context, status domain.AlarmStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alarmStatus = status

	return nil
}

// ArmingStatus returns the current arming mode.
func (r *MemoryRepository) ArmingStatus(_ context.Context) (domain.ArmingStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.armingStatus, nil
}

// SetArmingStatus stores a new arming mode.
func (r *MemoryRepository) SetArmingStatus(_ context.Context, status domain.ArmingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.armingStatus = status

	return nil
}

// Sensors returns snapshots of every registered sensor.
func (r *MemoryRepository) Sensors(_ context.Context) ([]*domain.Sensor, error) {
	items := r.sensors.Items()
	result := make([]*domain.Sensor, 0, len(items))

	for _, sensor := range items {
		result = append(result, sensor.Clone())
	}

	return result, nil
}

// Sensor returns a snapshot of a single sensor by ID.
func (r *MemoryRepository) Sensor(_ context.Context, id string) (*domain.Sensor, error) {
	sensor, ok := r.sensors.Get(id)
	if !ok {
		return nil, ErrSensorNotFound
	}

	return sensor.Clone(), nil
}

// AddSensor registers a sensor, overwriting any previous record with the same ID.
func (r *MemoryRepository) AddSensor(_ context.Context, sensor *domain.Sensor) error {
	r.sensors.Set(sensor.ID, sensor.Clone())

	return nil
}

// RemoveSensor deletes a sensor. Removing an unknown sensor is a no-op.
func (r *MemoryRepository) RemoveSensor(_ context.Context, id string) error {
	r.sensors.Remove(id)

	return nil
}

// UpdateSensor replaces the stored record for a known sensor.
func (r *MemoryRepository) UpdateSensor(_ context.Context, sensor *domain.Sensor) error {
	if !r.sensors.Has(sensor.ID) {
		return ErrSensorNotFound
	}

	r.sensors.Set(sensor.ID, sensor.Clone())

	return nil
}
