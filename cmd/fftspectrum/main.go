package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/fftspectrum/internal/audio"
	"github.com/linuxmatters/fftspectrum/internal/cli"
	"github.com/linuxmatters/fftspectrum/internal/renderer"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

// CLI describes the command line
type CLI struct {
	Input   string `arg:"" name:"input" help:"Input WAV file" optional:""`
	Version bool   `help:"Show version information"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, renders the spectrum and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	printer := cli.NewPrinter(stdout, stderr)

	var c CLI
	exitCode := -1
	parser, err := kong.New(&c,
		kong.Name(cli.AppName),
		kong.Description(cli.Description),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	if err != nil {
		printer.PrintError(fmt.Sprintf("building command line parser: %v", err))
		return 1
	}

	_, err = parser.Parse(args)

	// --help already printed and asked to exit
	if exitCode >= 0 {
		return exitCode
	}

	// Unknown flags and extra positional arguments
	if err != nil {
		printer.PrintUsage(cli.AppName)
		return 1
	}

	if c.Version {
		printer.PrintVersion(version)
		return 0
	}

	if c.Input == "" {
		printer.PrintUsage(cli.AppName)
		return 1
	}

	return generateSpectrum(c.Input, printer)
}

// generateSpectrum runs load -> transform -> render for one input file
func generateSpectrum(inputFile string, printer *cli.Printer) int {
	buf, err := audio.Load(inputFile, printer.PrintInfo)
	if err != nil {
		printer.PrintError(err.Error())
		return 1
	}
	printer.PrintInfo("Duration", fmt.Sprintf("%.3fs", buf.Duration()))

	spectrum := audio.MagnitudeSpectrum(buf.Samples)

	profile := audio.AnalyzeSignal(buf, spectrum)
	printer.PrintInfo("Level", fmt.Sprintf("peak %.1f dBFS, RMS %.1f dBFS", profile.PeakDBFS(), profile.RMSDBFS()))
	if profile.PeakBin >= 0 {
		printer.PrintInfo("Peak frequency", fmt.Sprintf("%.1f Hz (bin %d, magnitude %.3f)",
			profile.PeakFrequency, profile.PeakBin, profile.PeakMagnitude))
	}

	outputFile := renderer.OutputPath(inputFile)
	if err := renderer.Render(spectrum, outputFile); err != nil {
		printer.PrintError(fmt.Sprintf("rendering spectrum: %v", err))
		return 1
	}

	printer.PrintSuccess(fmt.Sprintf("FFT image generated: %s", outputFile))
	return 0
}
