package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out receives every status line. Stdout is reserved for CSS output.
var Out io.Writer = os.Stderr

var renderer = lipgloss.NewRenderer(os.Stderr)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = renderer.NewStyle().
			Bold(true).
			Foreground(Secondary).
			MarginBottom(1)

	SuccessStyle = renderer.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = renderer.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = renderer.NewStyle().
			Foreground(Warning)

	MutedStyle = renderer.NewStyle().
			Foreground(Muted)

	InfoStyle = renderer.NewStyle().
			Foreground(Secondary)

	KeyStyle = renderer.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = renderer.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// Banner returns the cssmith banner
func Banner() string {
	banner := `
 █▀▀ █▀▀ █▀▀ █▀▄▀█ ▀█▀ ▀▀█▀▀ █  █
 █   ▀▀█ ▀▀█ █ ▀ █  █    █   █▀▀█
 ▀▀▀ ▀▀▀ ▀▀▀ ▀   ▀ ▀▀▀   ▀   ▀  ▀`
	return TitleStyle.Render(banner)
}

// VersionLine returns the styled version line shown under the banner
func VersionLine(version string) string {
	return ValueStyle.Render(" Version: " + version)
}

// Divider returns a divider line
func Divider() string {
	return MutedStyle.Render("─────────────────────────────────────────")
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Fprintln(Out, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	fmt.Fprintln(Out, InfoStyle.Render("• "+fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(Out, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(Out, WarningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Fprintf(Out, "  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintHeader prints the standard header
func PrintHeader(version string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, Divider())
	fmt.Fprintln(Out, Banner())
	fmt.Fprintln(Out, VersionLine(version))
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, Divider())
	fmt.Fprintln(Out)
}

// Size formats a byte count for summaries
func Size(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
