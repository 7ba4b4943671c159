package security

import (
	"context"
	"fmt"
	goimage "image"

	domain "github.com/huylq94/uda-security/internal/domain/security"
	"github.com/huylq94/uda-security/internal/logger"
	repository "github.com/huylq94/uda-security/internal/repository/security"
	"github.com/huylq94/uda-security/internal/service/image"
)

// catConfidenceThreshold is the fixed confidence the classifier is asked for.
const catConfidenceThreshold float32 = 0.50

// Service is the alarm decision engine.
//
// It re-reads current status from the repository before every decision and
// routes every alarm status change through SetAlarmStatus, so listeners see
// each change exactly once. The engine does no locking of its own; callers
// serialize access to it.
type Service struct {
	// repo is the system of record for statuses and sensors.
	repo repository.Repository
	// classifier answers whether a camera image contains a cat.
	classifier image.Classifier
	// listeners is the set of registered status listeners.
	listeners map[StatusListener]struct{}
	// catDetected remembers the last camera verdict. It is only ever
	// changed by ProcessImage and decides what arming home does.
	catDetected bool
}

// NewService creates an engine over the given repository and classifier.
func NewService(repo repository.Repository, classifier image.Classifier) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		listeners:  make(map[StatusListener]struct{}),
	}
}

// AddStatusListener registers a listener. Adding one twice has no extra effect.
func (s *Service) AddStatusListener(listener StatusListener) {
	s.listeners[listener] = struct{}{}
}

// RemoveStatusListener unregisters a listener. Removing a stranger is a no-op.
func (s *Service) RemoveStatusListener(listener StatusListener) {
	delete(s.listeners, listener)
}

// SetArmingStatus changes the arming mode. Disarming always clears the
// alarm; arming deactivates every active sensor through the regular
// deactivation path; arming home after a cat sighting raises the alarm
// before anything else.
func (s *Service) SetArmingStatus(ctx context.Context, status domain.ArmingStatus) error {
	if s.catDetected && status == domain.ArmingStatusArmedHome {
		if err := s.SetAlarmStatus(ctx, domain.AlarmStatusAlarm); err != nil {
			return err
		}
	}

	if status == domain.ArmingStatusDisarmed {
		if err := s.SetAlarmStatus(ctx, domain.AlarmStatusNoAlarm); err != nil {
			return err
		}
	} else {
		sensors, err := s.repo.Sensors(ctx)
		if err != nil {
			return fmt.Errorf("list sensors: %w", err)
		}

		for _, sensor := range sensors {
			if !sensor.Active {
				continue
			}

			if err := s.ChangeSensorActivationStatus(ctx, sensor, false); err != nil {
				return err
			}
		}
	}

	if err := s.repo.SetArmingStatus(ctx, status); err != nil {
		return fmt.Errorf("set arming status: %w", err)
	}

	logger.InfoKV(ctx, "Arming status changed", "arming_status", status)

	for listener := range s.listeners {
		listener.SensorStatusChanged()
	}

	return nil
}

// ChangeSensorActivationStatus applies an explicit activation value to a
// sensor. Alarm status escalates on activation and downgrades on genuine
// deactivation unless the system is already in full alarm, which is sticky
// against sensor churn. The sensor is persisted in every case.
func (s *Service) ChangeSensorActivationStatus(ctx context.Context, sensor *domain.Sensor, active bool) error {
	alarmStatus, err := s.repo.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("get alarm status: %w", err)
	}

	if alarmStatus != domain.AlarmStatusAlarm {
		if active {
			if err := s.handleSensorActivated(ctx); err != nil {
				return err
			}
		} else if sensor.Active {
			if err := s.handleSensorDeactivated(ctx); err != nil {
				return err
			}
		}
	}

	sensor.Active = active

	if err := s.repo.UpdateSensor(ctx, sensor); err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}

	return nil
}

// ReconcileSensorStatus re-evaluates alarm status for a sensor whose
// activation did not itself change. Exactly two situations downgrade:
// a pending alarm over an inactive sensor, and a full alarm on a disarmed
// system. The sensor's stored activation is untouched but the record is
// still written back.
func (s *Service) ReconcileSensorStatus(ctx context.Context, sensor *domain.Sensor) error {
	alarmStatus, err := s.repo.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("get alarm status: %w", err)
	}

	armingStatus, err := s.repo.ArmingStatus(ctx)
	if err != nil {
		return fmt.Errorf("get arming status: %w", err)
	}

	switch {
	case alarmStatus == domain.AlarmStatusPending && !sensor.Active:
		if err := s.handleSensorDeactivated(ctx); err != nil {
			return err
		}
	case alarmStatus == domain.AlarmStatusAlarm && armingStatus == domain.ArmingStatusDisarmed:
		if err := s.handleSensorDeactivated(ctx); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateSensor(ctx, sensor); err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}

	return nil
}

// handleSensorActivated escalates the alarm one step unless the system is disarmed.
func (s *Service) handleSensorActivated(ctx context.Context) error {
	armingStatus, err := s.repo.ArmingStatus(ctx)
	if err != nil {
		return fmt.Errorf("get arming status: %w", err)
	}

	if armingStatus == domain.ArmingStatusDisarmed {
		// No problem if the system is disarmed.
		return nil
	}

	alarmStatus, err := s.repo.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("get alarm status: %w", err)
	}

	switch alarmStatus {
	case domain.AlarmStatusNoAlarm:
		return s.SetAlarmStatus(ctx, domain.AlarmStatusPending)
	case domain.AlarmStatusPending:
		return s.SetAlarmStatus(ctx, domain.AlarmStatusAlarm)
	}

	return nil
}

// handleSensorDeactivated downgrades the alarm one step regardless of arming mode.
func (s *Service) handleSensorDeactivated(ctx context.Context) error {
	alarmStatus, err := s.repo.AlarmStatus(ctx)
	if err != nil {
		return fmt.Errorf("get alarm status: %w", err)
	}

	switch alarmStatus {
	case domain.AlarmStatusPending:
		return s.SetAlarmStatus(ctx, domain.AlarmStatusNoAlarm)
	case domain.AlarmStatusAlarm:
		return s.SetAlarmStatus(ctx, domain.AlarmStatusPending)
	}

	return nil
}

// ProcessImage asks the classifier about the current camera image and feeds
// the verdict into the cat-detection rules. Classifier failures propagate.
func (s *Service) ProcessImage(ctx context.Context, img goimage.Image) error {
	cat, err := s.classifier.ContainsCat(ctx, img, catConfidenceThreshold)
	if err != nil {
		return fmt.Errorf("classify image: %w", err)
	}

	return s.catDetectedChanged(ctx, cat)
}

// catDetectedChanged records the camera verdict and applies the cat rules:
// a cat on an armed-home system raises the alarm; no cat with every sensor
// quiet clears it. Listeners hear the verdict either way.
func (s *Service) catDetectedChanged(ctx context.Context, cat bool) error {
	s.catDetected = cat

	armingStatus, err := s.repo.ArmingStatus(ctx)
	if err != nil {
		return fmt.Errorf("get arming status: %w", err)
	}

	if cat && armingStatus == domain.ArmingStatusArmedHome {
		if err := s.SetAlarmStatus(ctx, domain.AlarmStatusAlarm); err != nil {
			return err
		}
	} else if !cat {
		sensors, err := s.repo.Sensors(ctx)
		if err != nil {
			return fmt.Errorf("list sensors: %w", err)
		}

		allInactive := true

		for _, sensor := range sensors {
			if sensor.Active {
				allInactive = false
				break
			}
		}

		if allInactive {
			if err := s.SetAlarmStatus(ctx, domain.AlarmStatusNoAlarm); err != nil {
				return err
			}
		}
	}

	logger.InfoKV(ctx, "Camera scan processed", "cat_detected", cat)

	for listener := range s.listeners {
		listener.CatDetected(cat)
	}

	return nil
}

// SetAlarmStatus is the sole mutation point for the alarm status: it writes
// the repository, then tells every listener the post-change value.
func (s *Service) SetAlarmStatus(ctx context.Context, status domain.AlarmStatus) error {
	if err := s.repo.SetAlarmStatus(ctx, status); err != nil {
		return fmt.Errorf("set alarm status: %w", err)
	}

	logger.InfoKV(ctx, "Alarm status changed", "alarm_status", status)

	for listener := range s.listeners {
		listener.Notify(status)
	}

	return nil
}

// AlarmStatus returns the current alert level from the repository.
func (s *Service) AlarmStatus(ctx context.Context) (domain.AlarmStatus, error) {
	return s.repo.AlarmStatus(ctx)
}

// ArmingStatus returns the current arming mode from the repository.
func (s *Service) ArmingStatus(ctx context.Context) (domain.ArmingStatus, error) {
	return s.repo.ArmingStatus(ctx)
}

// Sensors returns the registered sensors from the repository.
func (s *Service) Sensors(ctx context.Context) ([]*domain.Sensor, error) {
	return s.repo.Sensors(ctx)
}

// AddSensor registers a sensor with the repository.
func (s *Service) AddSensor(ctx context.Context, sensor *domain.Sensor) error {
	return s.repo.AddSensor(ctx, sensor)
}

// RemoveSensor removes a sensor from the repository.
func (s *Service) RemoveSensor(ctx context.Context, id string) error {
	return s.repo.RemoveSensor(ctx, id)
}
