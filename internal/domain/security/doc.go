// Package security contains core domain types for the security system.
//
// It defines the AlarmStatus and ArmingStatus enumerations that drive the
// alarm decision logic, and the Sensor record with a Clone helper to avoid
// leaking internal references.
package security
