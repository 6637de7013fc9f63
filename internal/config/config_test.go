package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	off := false
	in := &Config{
		DefaultProfile: "work",
		Server: Server{
			BaseURL: "https://desk.example.com",
			WSPath:  "/ws/chat/",
		},
		Realtime: Realtime{
			ReconnectIntervalMs: 1000,
			TypingTTLMs:         2000,
			AutoReconnect:       &off,
		},
	}
	if err := Save(path, in); err != nil {
		t.Fatal(err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.DefaultProfile != "work" {
		t.Errorf("default_profile = %q, want work", out.DefaultProfile)
	}
	if out.Server.BaseURL != "https://desk.example.com" {
		t.Errorf("base_url = %q", out.Server.BaseURL)
	}
	if out.Realtime.ReconnectIntervalMs != 1000 {
		t.Errorf("reconnect_interval_ms = %d, want 1000", out.Realtime.ReconnectIntervalMs)
	}
	if out.AutoReconnect() {
		t.Error("auto_reconnect should be false")
	}
}

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_profile = \"main\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Realtime.ReconnectIntervalMs != DefaultReconnectIntervalMs {
		t.Errorf("reconnect interval = %d, want default %d", cfg.Realtime.ReconnectIntervalMs, DefaultReconnectIntervalMs)
	}
	if cfg.Realtime.TypingTTLMs != DefaultTypingTTLMs {
		t.Errorf("typing ttl = %d, want default %d", cfg.Realtime.TypingTTLMs, DefaultTypingTTLMs)
	}
	if cfg.Server.WSPath != DefaultWSPath {
		t.Errorf("ws_path = %q, want default %q", cfg.Server.WSPath, DefaultWSPath)
	}
	if !cfg.AutoReconnect() {
		t.Error("auto_reconnect should default to true")
	}
}
