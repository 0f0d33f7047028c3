package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/nojs-ssr/render"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(render.DefaultOptions(), cfg.RenderOptions()); diff != "" {
		t.Errorf("RenderOptions mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr != ":3000" || cfg.Component != "counter" || cfg.Hydrate.IDPrefix != "nano-el-" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nojs.yaml")
	data := []byte(`
addr: ":8080"
component: greetings
document:
  title: Demo
  lang: en
hydrate:
  strategy: declared
  id_prefix: el-
log:
  level: debug
  format: text
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, envMap(map[string]string{
		"PORT":           "9000",
		"NOJS_COMPONENT": "clicker",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("Expected PORT to override addr, got %q", cfg.Addr)
	}
	if cfg.Component != "clicker" {
		t.Errorf("Expected NOJS_COMPONENT to override component, got %q", cfg.Component)
	}
	if cfg.Hydrate.IDPrefix != "el-" {
		t.Errorf("Expected id prefix from file, got %q", cfg.Hydrate.IDPrefix)
	}

	want := render.Options{
		Title:      "Demo",
		StylingURL: render.DefaultOptions().StylingURL,
		RootID:     "root",
		Lang:       "en",
		Tag:        "button",
		Strategy:   render.StrategyDeclared,
	}
	if diff := cmp.Diff(want, cfg.RenderOptions()); diff != "" {
		t.Errorf("RenderOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvAddrWinsOverPort(t *testing.T) {
	cfg, err := Load("", envMap(map[string]string{"PORT": "9000", "NOJS_ADDR": "127.0.0.1:7000"}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:7000" {
		t.Errorf("Expected NOJS_ADDR to win, got %q", cfg.Addr)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"strategy":   {"NOJS_STRATEGY": "regex"},
		"log level":  {"LOG_LEVEL": "loud"},
		"log format": {"LOG_FORMAT": "xml"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load("", envMap(env)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_TagAndPrefix(t *testing.T) {
	cfg := Default()
	cfg.Hydrate.Tag = "bu tton"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for a bad tag, got %v", err)
	}

	cfg = Default()
	cfg.Hydrate.IDPrefix = `x"`
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for a bad prefix, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
