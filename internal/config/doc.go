// Package config defines runtime settings used by the catpoint CLI and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the state file path, the image classifier selection
// and the logging level.
package config
