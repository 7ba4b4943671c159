package security

import "github.com/google/uuid"

// SensorType tags a sensor with the kind of opening or area it watches.
type SensorType string

// SensorType values enumerate the supported sensor kinds.
const (
	SensorTypeDoor   SensorType = "DOOR"
	SensorTypeWindow SensorType = "WINDOW"
	SensorTypeMotion SensorType = "MOTION"
)

// ParseSensorType converts string input to a SensorType.
func ParseSensorType(s string) (SensorType, bool) {
	switch SensorType(s) {
	case SensorTypeDoor, SensorTypeWindow, SensorTypeMotion:
		return SensorType(s), true
	default:
		return SensorTypeDoor, false
	}
}

// Sensor is a binary device monitored by the system.
// Its identity is stable; only the Active flag is mutated over its lifetime.
type Sensor struct {
	// ID is the stable identifier assigned at creation.
	ID string `yaml:"id"`
	// Name is the human-readable label shown in the CLI.
	Name string `yaml:"name"`
	// Type tags what kind of device this is.
	Type SensorType `yaml:"type"`
	// Active indicates whether the sensor is currently triggered.
	Active bool `yaml:"active"`
}

// NewSensor creates an inactive sensor with a fresh random identifier.
func NewSensor(name string, sensorType SensorType) *Sensor {
	return &Sensor{
		ID:   uuid.NewString(),
		Name: name,
		Type: sensorType,
	}
}

// Clone returns a copy of the sensor so stores hand out snapshots
// instead of shared mutable references.
func (s *Sensor) Clone() *Sensor {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}
