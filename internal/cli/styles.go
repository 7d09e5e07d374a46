package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#1E90FF") // Blue
	errorColor   = lipgloss.Color("#D7263D") // Red
	successColor = lipgloss.Color("#00AA00") // Green
	mutedColor   = lipgloss.Color("#888888") // Gray
	textColor    = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold blue
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// Printer writes styled progress to stdout and errors to stderr
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewPrinter creates a Printer; nil writers fall back to the process streams
func NewPrinter(stdout, stderr io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Printer{Stdout: stdout, Stderr: stderr}
}

// PrintVersion prints version information
func (p *Printer) PrintVersion(version string) {
	fmt.Fprintln(p.Stdout, TitleStyle.Render(AppName))
	fmt.Fprintf(p.Stdout, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintUsage prints the one-line usage message
func (p *Printer) PrintUsage(name string) {
	fmt.Fprintf(p.Stdout, "Usage: %s <input_wav_file>\n", name)
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) {
	fmt.Fprintf(p.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) {
	fmt.Fprintf(p.Stdout, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational key/value line
func (p *Printer) PrintInfo(key, value string) {
	fmt.Fprintf(p.Stdout, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}
