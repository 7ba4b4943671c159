package security

import (
	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// StatusListener is notified of system events by the engine.
//
// Every registered listener is invoked exactly once per triggering event,
// synchronously and in no defined order relative to other listeners.
type StatusListener interface {
	// SensorStatusChanged signals that the sensor set or arming mode changed.
	// It carries no payload; listeners re-read whatever they display.
	SensorStatusChanged()
	// CatDetected reports the verdict of the latest camera scan.
	CatDetected(detected bool)
	// Notify reports every alarm status change with the post-change value.
	Notify(status domain.AlarmStatus)
}
