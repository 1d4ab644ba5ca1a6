// Package config provides configuration structures and utilities for fangscan.
// It defines the main configuration options for scan ranges, chunking and
// worker settings, and report generation preferences.
package config
