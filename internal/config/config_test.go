package config

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Errorf("port = %q, want 8080", cfg.GetServerPort())
	}
	if cfg.GetUploadPath() != "./uploads" {
		t.Errorf("upload path = %q", cfg.GetUploadPath())
	}
	if cfg.GetOutputPath() != "./output" {
		t.Errorf("output path = %q", cfg.GetOutputPath())
	}
	if cfg.GetMaxFileSize() != 50*1024*1024 {
		t.Errorf("max file size = %d", cfg.GetMaxFileSize())
	}
	if cfg.GetOCRLanguage() != "fra" {
		t.Errorf("ocr language = %q, want fra", cfg.GetOCRLanguage())
	}
	if cfg.GetWorkerCount() != 2 {
		t.Errorf("worker count = %d, want 2", cfg.GetWorkerCount())
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OCR_LANGUAGE", "eng")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("MAX_FILE_SIZE", "1048576")

	cfg := NewConfig()
	if cfg.GetServerPort() != "9090" {
		t.Errorf("port = %q, want 9090", cfg.GetServerPort())
	}
	if cfg.GetOCRLanguage() != "eng" {
		t.Errorf("ocr language = %q, want eng", cfg.GetOCRLanguage())
	}
	if cfg.GetWorkerCount() != 4 {
		t.Errorf("worker count = %d, want 4", cfg.GetWorkerCount())
	}
	if cfg.GetMaxFileSize() != 1048576 {
		t.Errorf("max file size = %d, want 1048576", cfg.GetMaxFileSize())
	}
}

func TestNewConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("MAX_FILE_SIZE", "huge")

	cfg := NewConfig()
	if cfg.GetWorkerCount() != 2 {
		t.Errorf("worker count = %d, want default 2", cfg.GetWorkerCount())
	}
	if cfg.GetMaxFileSize() != 50*1024*1024 {
		t.Errorf("max file size = %d, want default", cfg.GetMaxFileSize())
	}
}
