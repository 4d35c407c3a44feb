package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/embedded"
)

// TestLoadGameConfigExternalFile 外部文件优先
func TestLoadGameConfigExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("maxButterflies: 8\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig error: %v", err)
	}
	if cfg.MaxButterflies != 8 {
		t.Errorf("MaxButterflies: got %d, want 8", cfg.MaxButterflies)
	}
}

// TestLoadGameConfigMissingFile 外部文件不存在时返回错误
func TestLoadGameConfigMissingFile(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing external config should be an error")
	}
}

// TestLoadGameConfigEmbedded 内嵌配置及其降级
func TestLoadGameConfigEmbedded(t *testing.T) {
	t.Cleanup(func() { embedded.Init(nil) })

	tests := []struct {
		name    string
		fs      fstest.MapFS
		wantMax int
	}{
		{"not initialized", nil, config.DefaultGameConfig().MaxButterflies},
		{"valid", fstest.MapFS{embeddedConfigPath: {Data: []byte("maxButterflies: 10\n")}}, 10},
		{"invalid falls back", fstest.MapFS{embeddedConfigPath: {Data: []byte("maxButterflies: -1\n")}}, config.DefaultGameConfig().MaxButterflies},
		{"missing falls back", fstest.MapFS{}, config.DefaultGameConfig().MaxButterflies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fs == nil {
				embedded.Init(nil)
			} else {
				embedded.Init(tt.fs)
			}

			cfg, err := LoadGameConfig("")
			if err != nil {
				t.Fatalf("LoadGameConfig error: %v", err)
			}
			if cfg.MaxButterflies != tt.wantMax {
				t.Errorf("MaxButterflies: got %d, want %d", cfg.MaxButterflies, tt.wantMax)
			}
		})
	}
}
