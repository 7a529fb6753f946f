package config

import (
	"os"
	"path/filepath"
	"testing"

	cwerrors "github.com/lunaterra/chartwheel/pkg/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[wheel]
min_separation = 9.5

[cache]
backend = "redis"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wheel.MinSeparation != 9.5 {
		t.Errorf("MinSeparation = %v, want 9.5", cfg.Wheel.MinSeparation)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}

	// Fields absent from the file keep their defaults
	if cfg.Wheel.Size != 600 {
		t.Errorf("Size = %v, want default 600", cfg.Wheel.Size)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want default :8080", cfg.Server.Addr)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wheel\nsize=="), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("malformed TOML should error")
	}
	if !cwerrors.Is(err, cwerrors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", cwerrors.GetCode(err))
	}
}

func TestCacheDirExplicit(t *testing.T) {
	cc := CacheConfig{Dir: "/tmp/custom"}
	dir, err := cc.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir: %v", err)
	}
	if dir != "/tmp/custom" {
		t.Errorf("CacheDir = %q, want /tmp/custom", dir)
	}
}

func TestCacheDirDefault(t *testing.T) {
	dir, err := CacheConfig{}.CacheDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(dir) != "chartwheel" {
		t.Errorf("default cache dir should end in chartwheel: %q", dir)
	}
}
