// Package config provides configuration structures and utilities for the
// site audit. It defines the analysis thresholds, report preferences, and
// the optional YAML override file.
package config
