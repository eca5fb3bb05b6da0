// Package config manages gitwrap configuration.
//
// It handles:
//   - The optional YAML config file
//   - Environment variable overrides
//   - Defaults for the command runner and logging
package config
