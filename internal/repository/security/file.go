package security

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/huylq94/uda-security/internal/config"
	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// snapshot is the on-disk YAML representation of the full security state.
type snapshot struct {
	// AlarmStatus is the persisted alert level.
	AlarmStatus domain.AlarmStatus `yaml:"alarm_status"`
	// ArmingStatus is the persisted arming mode.
	ArmingStatus domain.ArmingStatus `yaml:"arming_status"`
	// Sensors lists every registered sensor.
	Sensors []*domain.Sensor `yaml:"sensors"`
}

// FileRepository persists the security state to a YAML file on disk.
// Every mutation rewrites the snapshot so CLI invocations share state.
type FileRepository struct {
	// path is the filesystem location of the YAML state file.
	path string
	// mu protects the in-memory snapshot and the state file.
	mu sync.Mutex
	// alarmStatus is the current alert level.
	alarmStatus domain.AlarmStatus
	// armingStatus is the current arming mode.
	armingStatus domain.ArmingStatus
	// sensors holds sensor records keyed by sensor ID.
	sensors map[string]*domain.Sensor
}

// NewFileRepository creates a repository backed by the YAML file at path.
// A missing file yields the default state: no alarm, disarmed, no sensors.
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		path:         filepath.Clean(path),
		alarmStatus:  domain.AlarmStatusNoAlarm,
		armingStatus: domain.ArmingStatusDisarmed,
		sensors:      make(map[string]*domain.Sensor),
	}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var snap snapshot
	if err = yaml.Unmarshal(contents, &snap); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	if snap.AlarmStatus != "" {
		r.alarmStatus = snap.AlarmStatus
	}

	if snap.ArmingStatus != "" {
		r.armingStatus = snap.ArmingStatus
	}

	for _, sensor := range snap.Sensors {
		r.sensors[sensor.ID] = sensor
	}

	return r, nil
}

// save writes the current snapshot to disk. Callers must hold mu.
func (r *FileRepository) save() error {
	snap := snapshot{
		AlarmStatus:  r.alarmStatus,
		ArmingStatus: r.armingStatus,
		Sensors:      make([]*domain.Sensor, 0, len(r.sensors)),
	}

	for _, sensor := range r.sensors {
		snap.Sensors = append(snap.Sensors, sensor)
	}

	// Keep the file stable across saves.
	sort.Slice(snap.Sensors, func(i, j int) bool {
		return snap.Sensors[i].ID < snap.Sensors[j].ID
	})

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// AlarmStatus returns the current alert level.
func (r *FileRepository) AlarmStatus(_ context.Context) (domain.AlarmStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.alarmStatus, nil
}

// SetAlarmStatus stores a new alert level and rewrites the snapshot.
func (r *FileRepository) SetAlarmStatus(_ context.Context, status domain.AlarmStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alarmStatus = status

	return r.save()
}

// ArmingStatus returns the current arming mode.
func (r *FileRepository) ArmingStatus(_ context.Context) (domain.ArmingStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.armingStatus, nil
}

// SetArmingStatus stores a new arming mode and rewrites the snapshot.
func (r *FileRepository) SetArmingStatus(_ context.Context, status domain.ArmingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.armingStatus = status

	return r.save()
}

// Sensors returns snapshots of every registered sensor.
func (r *FileRepository) Sensors(_ context.Context) ([]*domain.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Sensor, 0, len(r.sensors))
	for _, sensor := range r.sensors {
		result = append(result, sensor.Clone())
	}

	return result, nil
}

// Sensor returns a snapshot of a single sensor by ID.
func (r *FileRepository) Sensor(_ context.Context, id string) (*domain.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sensor, ok := r.sensors[id]
	if !ok {
		return nil, ErrSensorNotFound
	}

	return sensor.Clone(), nil
}

// AddSensor registers a sensor and rewrites the snapshot.
func (r *FileRepository) AddSensor(_ context.Context, sensor *domain.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sensors[sensor.ID] = sensor.Clone()

	return r.save()
}

// RemoveSensor deletes a sensor and rewrites the snapshot.
// Removing an unknown sensor is a no-op that still rewrites the file.
func (r *FileRepository) RemoveSensor(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sensors, id)

	return r.save()
}

// UpdateSensor replaces the stored record for a known sensor and rewrites the snapshot.
func (r *FileRepository) UpdateSensor(_ context.Context, sensor *domain.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sensors[sensor.ID]; !ok {
		return ErrSensorNotFound
	}

	r.sensors[sensor.ID] = sensor.Clone()

	return r.save()
}
