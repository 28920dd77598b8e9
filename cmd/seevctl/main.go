// seevctl runs the extraction and analysis pipeline once from the
// command line, against the same configuration the API server uses.
// Useful for smoke testing a deployment without standing up the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mhire/seev-services/internal/bootstrap"
	"github.com/mhire/seev-services/internal/config"
	"github.com/mhire/seev-services/internal/core/domain"
	"github.com/mhire/seev-services/internal/observability/logging"
)

func main() {
	var (
		filePath = flag.String("file", "", "image or PDF to extract text from (optional, text read from stdin otherwise)")
		analyze  = flag.Bool("analyze", true, "run bias analysis on the text")
		rewrite  = flag.Bool("rewrite", false, "also produce a bias-free rewrite")
		timeout  = flag.Duration("timeout", 3*time.Minute, "overall deadline")
	)
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewJSONLogger("seevctl", "warn")
	slog.SetDefault(logger)
	app := bootstrap.New(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	text, err := loadText(ctx, app, *filePath)
	if err != nil {
		log.Fatalf("load text: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		log.Fatal("no input text; pass -file or pipe text on stdin")
	}

	out := map[string]any{"text": text}

	if *analyze || *rewrite {
		analysis, err := app.AnalyzeUC.Analyze(ctx, text)
		if err != nil {
			log.Fatalf("analyze: %v", err)
		}
		out["analysis"] = analysis

		if *rewrite {
			result, err := app.RewriteUC.Rewrite(ctx, domain.NewRewriteFromAnalysis(text, analysis))
			if err != nil {
				log.Fatalf("rewrite: %v", err)
			}
			out["rewrite"] = result
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

func loadText(ctx context.Context, app *bootstrap.App, filePath string) (string, error) {
	if filePath == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return app.ExtractUC.ExtractText(ctx, domain.UploadedDocument{
		Content:  content,
		MimeType: mime.TypeByExtension(filepath.Ext(filePath)),
		Filename: filepath.Base(filePath),
	})
}
