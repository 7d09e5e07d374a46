package cli

import "github.com/charmbracelet/lipgloss"

// Spectrum colour palette, low to high frequency
var (
	SpectrumViolet = lipgloss.Color("#8A2BE2")
	SpectrumBlue   = lipgloss.Color("#1E90FF")
	SpectrumCyan   = lipgloss.Color("#00CED1")
	SpectrumGreen  = lipgloss.Color("#32CD32")
)
