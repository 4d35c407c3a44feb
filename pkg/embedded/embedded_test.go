package embedded

import (
	"testing"
	"testing/fstest"
)

// TestReadFileBeforeInit 未初始化时返回错误
func TestReadFileBeforeInit(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	if _, err := ReadFile("data/config/game.yaml"); err == nil {
		t.Error("ReadFile should fail before Init")
	}
	if Exists("data/config/game.yaml") {
		t.Error("Exists should be false before Init")
	}
}

// TestReadFile 路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/config/game.yaml": &fstest.MapFile{Data: []byte("maxButterflies: 15\n")},
	})
	t.Cleanup(func() { Init(nil) })

	for _, path := range []string{"data/config/game.yaml", "./data/config/game.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Errorf("ReadFile(%q) error: %v", path, err)
			continue
		}
		if string(data) != "maxButterflies: 15\n" {
			t.Errorf("ReadFile(%q): got %q", path, data)
		}
	}

	if _, err := ReadFile("assets/font.ttf"); err == nil {
		t.Error("paths outside data/ should be rejected")
	}
	if !Exists("data/config/game.yaml") || Exists("data/config/missing.yaml") {
		t.Error("Exists reported the wrong result")
	}
}
