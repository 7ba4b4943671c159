// Package security implements persistence for the security system state.
//
// It exposes the Repository interface the alarm engine depends on, an
// in-memory implementation for tests and ephemeral runs, and a
// FileRepository that snapshots the full state (statuses plus sensors) to a
// YAML file on disk so the CLI keeps state across invocations.
package security
