package security

// AlarmStatus represents the current alert level of the system.
type AlarmStatus string

// AlarmStatus values enumerate the possible alert levels.
const (
	AlarmStatusNoAlarm AlarmStatus = "NO_ALARM"
	AlarmStatusPending AlarmStatus = "PENDING_ALARM"
	AlarmStatusAlarm   AlarmStatus = "ALARM"
)

// Description returns a human-readable summary of the alert level for CLI output.
func (s AlarmStatus) Description() string {
	switch s {
	case AlarmStatusNoAlarm:
		return "Cool and good"
	case AlarmStatusPending:
		return "I'm in danger..."
	case AlarmStatusAlarm:
		return "Awooga! Awooga!"
	default:
		return "Unknown"
	}
}

// ParseAlarmStatus converts string input to an AlarmStatus.
func ParseAlarmStatus(s string) (AlarmStatus, bool) {
	switch AlarmStatus(s) {
	case AlarmStatusNoAlarm, AlarmStatusPending, AlarmStatusAlarm:
		return AlarmStatus(s), true
	default:
		return AlarmStatusNoAlarm, false
	}
}

// ArmingStatus represents whether and how the system is armed.
type ArmingStatus string

// ArmingStatus values enumerate the supported arming modes.
const (
	ArmingStatusDisarmed  ArmingStatus = "DISARMED"
	ArmingStatusArmedHome ArmingStatus = "ARMED_HOME"
	ArmingStatusArmedAway ArmingStatus = "ARMED_AWAY"
)

// Description returns a human-readable summary of the arming mode for CLI output.
func (s ArmingStatus) Description() string {
	switch s {
	case ArmingStatusDisarmed:
		return "Disarmed"
	case ArmingStatusArmedHome:
		return "Armed - At Home"
	case ArmingStatusArmedAway:
		return "Armed - Away"
	default:
		return "Unknown"
	}
}

// ParseArmingStatus converts string input to an ArmingStatus.
func ParseArmingStatus(s string) (ArmingStatus, bool) {
	switch ArmingStatus(s) {
	case ArmingStatusDisarmed, ArmingStatusArmedHome, ArmingStatusArmedAway:
		return ArmingStatus(s), true
	default:
		return ArmingStatusDisarmed, false
	}
}
