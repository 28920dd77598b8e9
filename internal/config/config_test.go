package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "")
	t.Setenv("OCR_TESSERACT_BIN", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.OpenAIModel != "gpt-4-turbo-preview" {
		t.Fatalf("expected default model, got %q", cfg.OpenAIModel)
	}
	if cfg.OpenAITimeoutSeconds != 60 {
		t.Fatalf("expected default timeout 60, got %d", cfg.OpenAITimeoutSeconds)
	}
	if cfg.TesseractBin != "tesseract" {
		t.Fatalf("expected default tesseract binary, got %q", cfg.TesseractBin)
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Fatalf("expected default upload limit 20MB, got %d", cfg.MaxUploadBytes)
	}
	if cfg.OpenAIConfigured() {
		t.Fatal("expected OpenAIConfigured false without a key")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "15")
	t.Setenv("OCR_LANG", "deu")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg := Load()
	if !cfg.OpenAIConfigured() {
		t.Fatal("expected OpenAIConfigured true with a key")
	}
	if cfg.OpenAIBaseURL != "http://localhost:9999/v1" {
		t.Fatalf("expected base url override, got %q", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAITimeoutSeconds != 15 {
		t.Fatalf("expected timeout 15, got %d", cfg.OpenAITimeoutSeconds)
	}
	if cfg.OCRLang != "deu" {
		t.Fatalf("expected ocr lang deu, got %q", cfg.OCRLang)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("expected 5MB upload limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadFallsBackOnBadInt(t *testing.T) {
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	if cfg.OpenAITimeoutSeconds != 60 {
		t.Fatalf("expected fallback timeout 60, got %d", cfg.OpenAITimeoutSeconds)
	}
}
