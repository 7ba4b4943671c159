// Package security implements the alarm decision engine.
//
// The Service receives sensor, arming and camera events, decides the alarm
// status against the state held in the repository, and fans the outcome out
// to registered status listeners. It keeps no durable state of its own
// beyond the set of listeners and the last camera verdict.
package security
