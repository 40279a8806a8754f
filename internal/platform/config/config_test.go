package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vet-patient-tracker/internal/platform/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.Key != "pacientes" {
		t.Fatalf("unexpected storage defaults: %#v", cfg.Storage)
	}
	if cfg.Storage.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.Storage.Timeout)
	}
	if cfg.LogLevel != logger.Info || cfg.LogFormat != logger.FormatText {
		t.Fatalf("unexpected log defaults")
	}
}

func TestFromEnv_S3RequiresBucket(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"STORAGE_DRIVER": "s3"}))
	if err == nil {
		t.Fatalf("expected error without S3_BUCKET")
	}

	cfg, err := FromEnv(envMap(map[string]string{
		"STORAGE_DRIVER": "S3",
		"S3_BUCKET":      "vet",
		"S3_PATH_STYLE":  "true",
		"STORAGE_KEY":    "clinica-centro",
	}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if !cfg.Storage.S3.PathStyle || cfg.Storage.S3.Region != "us-east-1" || cfg.Storage.Key != "clinica-centro" {
		t.Fatalf("unexpected s3 config: %#v", cfg.Storage)
	}
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	cases := []map[string]string{
		{"STORAGE_DRIVER": "redis"},
		{"STORAGE_DRIVER": "postgres"},
		{"STORAGE_TIMEOUT": "soon"},
		{"STORAGE_TIMEOUT": "-1s"},
	}
	for _, env := range cases {
		if _, err := FromEnv(envMap(env)); err == nil {
			t.Fatalf("expected error for %v", env)
		}
	}
}

func TestFromEnv_Timeout(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"STORAGE_TIMEOUT": "750ms", "STORAGE_DRIVER": "memory"}))
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Storage.Timeout != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %s", cfg.Storage.Timeout)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STORAGE_DRIVER=memory\nAPP_NAME=desde-env-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("APP_NAME", "")
	// godotenv no pisa variables ya definidas, así que las removemos.
	os.Unsetenv("STORAGE_DRIVER")
	os.Unsetenv("APP_NAME")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory || cfg.AppName != "desde-env-file" {
		t.Fatalf("env file not applied: %#v", cfg)
	}
}

func TestLoad_MissingDefaultEnvFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("STORAGE_DRIVER", "memory")

	if _, err := Load(); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
