package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/linuxmatters/fftspectrum/internal/config"
)

// OutputPath derives the image path from the input audio path
func OutputPath(inputPath string) string {
	return inputPath + config.OutputSuffix
}

// Render resamples the magnitude spectrum to one value per pixel column,
// normalizes it and writes the plot to outputPath as PNG. Nothing is
// written when normalization fails.
func Render(spectrum []float64, outputPath string) error {
	resampled, err := Resample(spectrum, config.ResampleWidth)
	if err != nil {
		return err
	}

	normalized, err := Normalize(resampled)
	if err != nil {
		return err
	}

	img := DrawSpectrum(normalized)

	if err := savePNG(img, outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// savePNG writes img to outputPath, removing the file if encoding fails
func savePNG(img image.Image, outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := png.Encode(outFile, img); err != nil {
		outFile.Close()
		os.Remove(outputPath)
		return err
	}

	return outFile.Close()
}
