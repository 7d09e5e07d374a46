package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_RoutesStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinter(&stdout, &stderr)

	p.PrintInfo("Sample rate", "8000 Hz")
	p.PrintSuccess("FFT image generated: out.png")
	p.PrintError("reading input.wav: invalid WAV file")

	out := stdout.String()
	if !strings.Contains(out, "Sample rate:") || !strings.Contains(out, "8000 Hz") {
		t.Errorf("info line missing from stdout: %q", out)
	}
	if !strings.Contains(out, "FFT image generated: out.png") {
		t.Errorf("success line missing from stdout: %q", out)
	}
	if strings.Contains(out, "invalid WAV file") {
		t.Errorf("error leaked to stdout: %q", out)
	}

	errOut := stderr.String()
	if !strings.Contains(errOut, "Error:") || !strings.Contains(errOut, "invalid WAV file") {
		t.Errorf("error line missing from stderr: %q", errOut)
	}
}

func TestPrinter_Usage(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinter(&stdout, &bytes.Buffer{})

	p.PrintUsage(AppName)

	if got := stdout.String(); got != "Usage: fftspectrum <input_wav_file>\n" {
		t.Errorf("usage = %q", got)
	}
}

func TestPrinter_Version(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinter(&stdout, nil)

	p.PrintVersion("v1.2.3")

	if !strings.Contains(stdout.String(), "v1.2.3") {
		t.Errorf("version output missing version: %q", stdout.String())
	}
}

func TestNewPrinter_DefaultsToProcessStreams(t *testing.T) {
	p := NewPrinter(nil, nil)
	if p.Stdout == nil || p.Stderr == nil {
		t.Error("NewPrinter(nil, nil) left a nil writer")
	}
}
