// Package tui provides the terminal user interface for gitwrap.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss and termenv)
//   - Interactive prompts (using survey and bubbletea)
package tui
