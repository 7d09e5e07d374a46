package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linuxmatters/fftspectrum/internal/audio/wavtest"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeSineWAV(t *testing.T, dir string, freq float64) string {
	t.Helper()
	path := filepath.Join(dir, "tone.wav")
	samples := wavtest.Sine(freq, 8000, 8000, 0.8)
	if err := wavtest.WriteInt(path, 8000, 16, 1, wavtest.Int16(samples)); err != nil {
		t.Fatalf("failed to write WAV fixture: %v", err)
	}
	return path
}

// TestRun_EndToEnd renders one second of a 1 kHz tone at 8 kHz and checks
// the image and the reported peak.
func TestRun_EndToEnd(t *testing.T) {
	input := writeSineWAV(t, t.TempDir(), 1000)

	code, stdout, stderr := runCLI(t, input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}

	output := input + "_fft_spectrum.png"
	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("output image missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output image is empty")
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 400 {
		t.Errorf("image is %dx%d, want 800x400", img.Bounds().Dx(), img.Bounds().Dy())
	}

	for _, want := range []string{"8000 Hz", "int16", "8000", "1000.0 Hz (bin 1000", "FFT image generated: " + output} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "mono") {
		t.Errorf("mono input should not report a channel conversion")
	}

	t.Logf("✓ Generated %s (%d bytes)", output, info.Size())
}

func TestRun_StereoInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "stereo.wav")

	left := wavtest.Int16(wavtest.Sine(500, 8000, 4000, 0.5))
	right := wavtest.Int16(wavtest.Sine(500, 8000, 4000, 0.3))
	data := make([]int, 0, 2*len(left))
	for i := range left {
		data = append(data, left[i], right[i])
	}
	if err := wavtest.WriteInt(input, 8000, 16, 2, data); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, input)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "converted to mono") {
		t.Errorf("expected mono conversion notice:\n%s", stdout)
	}
}

// TestRun_SilentInput verifies the degenerate-signal path: exit 1 and no
// image on disk.
func TestRun_SilentInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "silence.wav")
	if err := wavtest.WriteInt(input, 8000, 16, 1, make([]int, 8000)); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, input)
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "zero or negative") {
		t.Errorf("expected degenerate signal diagnostic, got: %s", stderr)
	}
	if _, err := os.Stat(input + "_fft_spectrum.png"); !os.IsNotExist(err) {
		t.Error("no image should be written for silent input")
	}
}

func TestRun_InputErrors(t *testing.T) {
	dir := t.TempDir()

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("RIFX this is not a wave file"), 0o644); err != nil {
		t.Fatal(err)
	}

	alaw := filepath.Join(dir, "alaw.wav")
	if err := wavtest.WriteRaw(alaw, wavtest.FormatALaw, 8000, 1, 8, make([]byte, 100)); err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{filepath.Join(dir, "missing.wav"), junk, alaw} {
		t.Run(filepath.Base(input), func(t *testing.T) {
			code, _, stderr := runCLI(t, input)
			if code != 1 {
				t.Errorf("exit code %d, want 1", code)
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("expected error diagnostic, got: %q", stderr)
			}
			if _, err := os.Stat(input + "_fft_spectrum.png"); !os.IsNotExist(err) {
				t.Error("no image should be written on input error")
			}
		})
	}
}

// TestRun_ArgumentCount verifies that zero or several positional arguments
// print usage to stdout, exit 1 and write nothing.
func TestRun_ArgumentCount(t *testing.T) {
	dir := t.TempDir()
	input := writeSineWAV(t, dir, 440)

	testCases := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{input, input}},
		{"three arguments", []string{input, "b.wav", "c.wav"}},
		{"unknown flag", []string{"--bogus", input}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tc.args...)
			if code != 1 {
				t.Errorf("exit code %d, want 1", code)
			}
			if !strings.HasPrefix(stdout, "Usage:") {
				t.Errorf("expected usage on stdout, got %q", stdout)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("argument errors touched the filesystem: %d entries in %s", len(entries), dir)
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	if code != 0 {
		t.Errorf("exit code %d, want 0", code)
	}
	if !strings.Contains(stdout, version) {
		t.Errorf("version output missing %q: %s", version, stdout)
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	if code != 0 {
		t.Errorf("exit code %d, want 0", code)
	}
	for _, want := range []string{"Usage:", "input", "-h, --help", "--version"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output missing %q:\n%s", want, stdout)
		}
	}
}
