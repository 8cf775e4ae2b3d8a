package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
env: testnet
gateway:
  apiKey: foo
  apiSecret: bar
  baseURL: https://api.test
  timeoutMs: 3000
  recvWindowMs: 5000
log:
  level: debug
  outputs: [stdout]
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "testnet" || cfg.Gateway.APIKey != "foo" || cfg.Gateway.TimeoutMs != 3000 {
		t.Fatalf("unexpected cfg values: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

// TestLoadMissingFile 配置文件可缺省：返回测试网默认值。
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gateway.BaseURL != "https://testnet.binancefuture.com" {
		t.Fatalf("expected testnet default baseURL, got %s", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.APIKey != "" {
		t.Fatalf("expected empty credentials by default")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "env: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
env: testnet
gateway:
  apiKey: file-key
  apiSecret: file-secret
  baseURL: https://api.test
`)
	t.Setenv("BINANCE_API_KEY", "env-key")
	t.Setenv("BINANCE_API_SECRET", "env-secret")

	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gateway.APIKey != "env-key" || cfg.Gateway.APISecret != "env-secret" {
		t.Fatalf("env overrides not applied: %+v", cfg.Gateway)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	bad := Default()
	bad.Gateway.BaseURL = ""
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for empty baseURL")
	}

	bad = Default()
	bad.Gateway.TimeoutMs = -1
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}
