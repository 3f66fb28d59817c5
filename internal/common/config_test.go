package common

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr: got %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadMB != 32 {
		t.Errorf("max upload: got %d, want 32", cfg.Server.MaxUploadMB)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level: got %q, want info", cfg.Log.Level)
	}
	if cfg.Log.JSON {
		t.Error("log json: got true, want false")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EXTRACTOR_ADDR", ":9090")
	t.Setenv("EXTRACTOR_MAX_UPLOAD_MB", "8")
	t.Setenv("EXTRACTOR_LOG_LEVEL", "debug")
	t.Setenv("EXTRACTOR_LOG_JSON", "true")

	cfg := LoadConfig()

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr: got %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.MaxUploadMB != 8 {
		t.Errorf("max upload: got %d, want 8", cfg.Server.MaxUploadMB)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q, want debug", cfg.Log.Level)
	}
	if !cfg.Log.JSON {
		t.Error("log json: got false, want true")
	}
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("EXTRACTOR_MAX_UPLOAD_MB", "lots")
	t.Setenv("EXTRACTOR_LOG_JSON", "sure")

	cfg := LoadConfig()

	if cfg.Server.MaxUploadMB != 32 {
		t.Errorf("max upload: got %d, want default 32", cfg.Server.MaxUploadMB)
	}
	if cfg.Log.JSON {
		t.Error("log json: got true, want default false")
	}
}
