// Package style provides shared UI styling primitives for consistent
// visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0E9CB8")
	Slate  = lipgloss.Color("#667085")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Green)
	failStyle    = lipgloss.NewStyle().Foreground(Red)
	warnStyle    = lipgloss.NewStyle().Foreground(Yellow)
	infoStyle    = lipgloss.NewStyle().Foreground(Cyan)
	dimStyle     = lipgloss.NewStyle().Foreground(Slate)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Success renders s in the success color.
func Success(s string) string { return successStyle.Render(s) }

// Fail renders s in the failure color.
func Fail(s string) string { return failStyle.Render(s) }

// Warn renders s in the warning color.
func Warn(s string) string { return warnStyle.Render(s) }

// Info renders s in the informational color.
func Info(s string) string { return infoStyle.Render(s) }

// Dim renders s de-emphasized.
func Dim(s string) string { return dimStyle.Render(s) }

// Bold renders s emphasized.
func Bold(s string) string { return boldStyle.Render(s) }
