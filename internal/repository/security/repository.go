package security

import (
	"context"
	"errors"

	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// Repository defines persistence operations for the security system state.
// The alarm engine treats every call as synchronous; implementations decide
// how unknown sensor keys behave and surface it through ErrSensorNotFound.
type Repository interface {
	AlarmStatus(ctx context.Context) (domain.AlarmStatus, error)
	SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error
	ArmingStatus(ctx context.Context) (domain.ArmingStatus, error)
	SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error
	Sensors(ctx context.Context) ([]*domain.Sensor, error)
	Sensor(ctx context.Context, id string) (*domain.Sensor, error)
	AddSensor(ctx context.Context, sensor *domain.Sensor) error
	RemoveSensor(ctx context.Context, id string) error
	UpdateSensor(ctx context.Context, sensor *domain.Sensor) error
}

// ErrSensorNotFound is returned when a sensor key is unknown to the store.
var ErrSensorNotFound = errors.New("sensor not found")
