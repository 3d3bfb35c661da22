package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"payslip-processor/internal/domain"
)

// TesseractRecognizer runs the tesseract binary over a rasterized page image.
// The binary may be missing on the host; Available reports that and Recognize
// degrades with ErrRecognitionUnavailable instead of failing the page.
type TesseractRecognizer struct {
	binary  string
	timeout time.Duration
	logger  domain.Logger
}

// NewTesseractRecognizer creates a recognizer around the tesseract CLI.
// An empty binary path falls back to looking up "tesseract" on PATH.
func NewTesseractRecognizer(binary string, timeout time.Duration, logger domain.Logger) *TesseractRecognizer {
	if binary == "" {
		binary = "tesseract"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &TesseractRecognizer{
		binary:  binary,
		timeout: timeout,
		logger:  logger,
	}
}

// Available reports whether the tesseract binary can be resolved.
func (r *TesseractRecognizer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// Recognize feeds a PNG image through tesseract and returns the recognized
// text. The call is bounded by the configured timeout.
func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte, lang string) (string, error) {
	if _, err := exec.LookPath(r.binary); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRecognitionUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// "stdin"/"stdout" are tesseract's documented aliases for piped IO.
	args := []string{"stdin", "stdout"}
	if lang != "" {
		args = append(args, "-l", lang)
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
