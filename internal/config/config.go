package config

// Image settings
const (
	FigureWidthInches  = 8.0
	FigureHeightInches = 4.0
	DPI                = 100 // Pixels per inch

	Width  = int(FigureWidthInches * DPI)  // 800
	Height = int(FigureHeightInches * DPI) // 400
)

// Spectrum settings
const (
	// ResampleWidth is the number of values the magnitude spectrum is
	// interpolated to before drawing, one per pixel column
	ResampleWidth = Width

	// LineWidthPoints is the plot line width; the curve is thickened by
	// this much above the filled area (72 points per inch)
	LineWidthPoints = 1.5
)

// Appearance
const (
	// Foreground (line and fill) colour
	FillColorR = 0
	FillColorG = 0
	FillColorB = 0

	// Background colour
	BackgroundColorR = 255
	BackgroundColorG = 255
	BackgroundColorB = 255
)

// OutputSuffix is appended to the input path to name the rendered image
const OutputSuffix = "_fft_spectrum.png"

// LineWidthPixels converts LineWidthPoints to device pixels at DPI
func LineWidthPixels() float64 {
	return LineWidthPoints * DPI / 72.0
}
