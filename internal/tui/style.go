package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hashStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	remoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ConfigureColors picks the lipgloss color profile for the current output.
// Colors are turned off when NO_COLOR is set or stdout is not a terminal.
func ConfigureColors() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// ColorBranchName colors a branch name, marking the current branch
func ColorBranchName(name string, isCurrent bool) string {
	if isCurrent {
		return branchStyle.Render(name + " (current)")
	}
	return branchStyle.Render(name)
}

// ColorHash colors a commit hash
func ColorHash(hash string) string {
	return hashStyle.Render(hash)
}

// ColorTag colors a tag name
func ColorTag(name string) string {
	return tagStyle.Render(name)
}

// ColorRemote colors a remote-tracking ref or remote name
func ColorRemote(name string) string {
	return remoteStyle.Render(name)
}

// ColorDim renders secondary text
func ColorDim(text string) string {
	return dimStyle.Render(text)
}
