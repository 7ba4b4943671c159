// Package monitor provides a status listener that reports every system
// event through the structured logger. The CLI registers it so each run
// shows what the engine decided.
package monitor

import (
	"go.uber.org/zap"

	domain "github.com/huylq94/uda-security/internal/domain/security"
)

// Listener logs engine notifications.
type Listener struct {
	// log receives the event records.
	log *zap.SugaredLogger
}

// NewListener creates a listener writing to the provided logger.
func NewListener(log *zap.SugaredLogger) *Listener {
	return &Listener{
		log: log,
	}
}

// SensorStatusChanged logs that the sensor set or arming mode changed.
func (l *Listener) SensorStatusChanged() {
	l.log.Info("Sensor status changed")
}

// CatDetected logs the camera verdict.
func (l *Listener) CatDetected(detected bool) {
	l.log.Infow("Camera scan finished", "cat_detected", detected)
}

// Notify logs the new alarm status.
func (l *Listener) Notify(status domain.AlarmStatus) {
	l.log.Infow("Alarm notification", "alarm_status", status, "description", status.Description())
}
