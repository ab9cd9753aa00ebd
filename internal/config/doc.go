// Package config provides configuration structures and utilities for imgscan.
// It defines the options that drive fetching, extraction, HTTP checks,
// output and the interactive preview, plus the optional YAML file that
// supplies per-user defaults.
package config
