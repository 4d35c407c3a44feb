package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏数值配置
// 默认值见 DefaultGameConfig，可通过 YAML 文件覆盖
type GameConfig struct {
	ButterflySize       float64 `yaml:"butterflySize"`       // 蝴蝶尺寸（像素），仅用于生成时与边界保持距离
	HitRadius           float64 `yaml:"hitRadius"`           // 点击命中半径（像素），距离严格小于该值才算命中
	MinSpeed            float64 `yaml:"minSpeed"`            // 最小速度（像素/帧，含）
	MaxSpeed            float64 `yaml:"maxSpeed"`            // 最大速度（像素/帧，不含）
	MaxButterflies      int     `yaml:"maxButterflies"`      // 场上蝴蝶数量软上限
	InitialButterflies  int     `yaml:"initialButterflies"`  // 开局生成的蝴蝶数量
	SpawnIntervalMs     int     `yaml:"spawnIntervalMs"`     // 生成间隔（毫秒）
	CountdownIntervalMs int     `yaml:"countdownIntervalMs"` // 倒计时间隔（毫秒）
	MinCanvasWidth      float64 `yaml:"minCanvasWidth"`      // 画布最小宽度，小于此值时按此值处理
	MinCanvasHeight     float64 `yaml:"minCanvasHeight"`     // 画布最小高度
	DurationOptions     []int   `yaml:"durationOptions"`     // 菜单可选时长（分钟）
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		ButterflySize:       50,
		HitRadius:           30,
		MinSpeed:            1.5,
		MaxSpeed:            4,
		MaxButterflies:      15,
		InitialButterflies:  3,
		SpawnIntervalMs:     800,
		CountdownIntervalMs: 1000,
		MinCanvasWidth:      100,
		MinCanvasHeight:     100,
		DurationOptions:     []int{1, 2, 3, 5},
	}
}

// SpawnInterval 返回生成间隔
func (c *GameConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// CountdownInterval 返回倒计时间隔
func (c *GameConfig) CountdownInterval() time.Duration {
	return time.Duration(c.CountdownIntervalMs) * time.Millisecond
}

// ClampCanvas 将画布尺寸限制在最小值以上
// 画布过小时生成区间 [size, dim-size) 会退化，这里统一兜底
func (c *GameConfig) ClampCanvas(width, height float64) (float64, float64) {
	if width < c.MinCanvasWidth {
		width = c.MinCanvasWidth
	}
	if height < c.MinCanvasHeight {
		height = c.MinCanvasHeight
	}
	return width, height
}

// LoadGameConfig 从 YAML 文件加载配置
// 文件中未出现的字段保留默认值
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.ButterflySize <= 0 {
		return fmt.Errorf("butterflySize must be > 0, got %v", c.ButterflySize)
	}
	if c.HitRadius <= 0 {
		return fmt.Errorf("hitRadius must be > 0, got %v", c.HitRadius)
	}
	if c.MinSpeed <= 0 {
		return fmt.Errorf("minSpeed must be > 0, got %v", c.MinSpeed)
	}
	if c.MaxSpeed <= c.MinSpeed {
		return fmt.Errorf("maxSpeed (%v) must be greater than minSpeed (%v)", c.MaxSpeed, c.MinSpeed)
	}
	if c.MaxButterflies < 1 {
		return fmt.Errorf("maxButterflies must be >= 1, got %d", c.MaxButterflies)
	}
	if c.InitialButterflies < 0 || c.InitialButterflies > c.MaxButterflies {
		return fmt.Errorf("initialButterflies must be between 0 and maxButterflies (%d), got %d",
			c.MaxButterflies, c.InitialButterflies)
	}
	if c.SpawnIntervalMs <= 0 {
		return fmt.Errorf("spawnIntervalMs must be > 0, got %d", c.SpawnIntervalMs)
	}
	if c.CountdownIntervalMs <= 0 {
		return fmt.Errorf("countdownIntervalMs must be > 0, got %d", c.CountdownIntervalMs)
	}
	// 画布最小值必须能容纳两侧的生成边距，等于时生成区间退化为单点
	if c.MinCanvasWidth < 2*c.ButterflySize || c.MinCanvasHeight < 2*c.ButterflySize {
		return fmt.Errorf("minimum canvas %vx%v must be at least twice the butterfly size (%v)",
			c.MinCanvasWidth, c.MinCanvasHeight, c.ButterflySize)
	}
	if len(c.DurationOptions) == 0 {
		return fmt.Errorf("durationOptions cannot be empty")
	}
	for _, minutes := range c.DurationOptions {
		if minutes < 1 {
			return fmt.Errorf("duration option must be >= 1 minute, got %d", minutes)
		}
	}
	return nil
}
