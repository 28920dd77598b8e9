// Package imageocr extracts text from image uploads by shelling out to
// the tesseract binary. Uploads are decoded in process, flattened to
// opaque RGB and re-encoded as PNG so tesseract always sees a format it
// handles, regardless of what the client sent.
package imageocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mhire/seev-services/internal/core/domain"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Lang      string // OCR language, default "eng"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

func (e *Extractor) ExtractImage(ctx context.Context, content []byte) (string, error) {
	png, err := normalizeToPNG(content)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "decode image", err)
	}

	tmp, err := os.CreateTemp("", "seev-ocr-*.png")
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "stage image", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		return "", domain.WrapError(domain.ErrExtraction, "stage image", err)
	}
	if err := tmp.Close(); err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "stage image", err)
	}

	// tesseract <file> stdout -l <lang>
	out, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract, tmp.Name(), "stdout", "-l", e.cfg.Lang)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "run tesseract",
			fmt.Errorf("%w: %s", err, truncate(strings.TrimSpace(string(stderr)), 1024)))
	}
	return string(out), nil
}

// OCRVersion reports the installed tesseract version for health checks.
func (e *Extractor) OCRVersion(ctx context.Context) (string, error) {
	out, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract, "--version")
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "tesseract version",
			fmt.Errorf("%w: %s", err, truncate(strings.TrimSpace(string(stderr)), 1024)))
	}
	// first line looks like "tesseract 5.3.0"
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}
