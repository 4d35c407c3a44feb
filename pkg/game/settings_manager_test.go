package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestSettingsStorage 在临时 HOME 下创建 gdata manager
func openTestSettingsStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowFPS {
		t.Error("ShowFPS: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.IsPersistent() {
		t.Error("nil storage should not be persistent")
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	// 降级模式下 Save() 应该返回 nil（不报错）
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManagerResets 降级模式下 Load() 恢复默认设置
func TestLoadNilGdataManagerResets(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetFullscreen(true)
	sm.ToggleShowFPS()

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().Fullscreen || sm.GetSettings().ShowFPS {
		t.Errorf("After Load() in degraded mode: got %+v, want defaults", *sm.GetSettings())
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 往返
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestSettingsStorage(t, "butterfly_test_settings")

	sm1 := NewSettingsManager(manager)
	if !sm1.IsPersistent() {
		t.Fatal("manager with storage should be persistent")
	}
	sm1.SetFullscreen(true)
	if !sm1.ToggleShowFPS() {
		t.Fatal("ToggleShowFPS should return the new value true")
	}
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowFPS {
		t.Error("Loaded ShowFPS: got false, want true")
	}
}

// TestSettingsLoadCorrupted 存储内容损坏时回退到默认值并返回错误
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestSettingsStorage(t, "butterfly_test_settings_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if sm.GetSettings().Fullscreen {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}
