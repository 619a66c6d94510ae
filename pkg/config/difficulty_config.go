package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/cleandrop/pkg/embedded"
)

// DefaultDifficultyPath 内嵌难度表路径
const DefaultDifficultyPath = "data/difficulty.yaml"

// DifficultyConfig 难度配置表
type DifficultyConfig struct {
	Default string                       `yaml:"default"` // 默认难度名
	Order   []string                     `yaml:"order"`   // 标题画面上的显示顺序
	Scoring ScoringConfig                `yaml:"scoring"` // 接住水滴的计分
	Presets map[string]*DifficultyPreset `yaml:"presets"` // 难度名 -> 预设
}

// ScoringConfig 计分规则
type ScoringConfig struct {
	CleanGain    float64 `yaml:"cleanGain"`    // 接住净水增加的进度
	DirtyPenalty float64 `yaml:"dirtyPenalty"` // 接住污水扣除的进度
}

// DifficultyPreset 单个难度预设
type DifficultyPreset struct {
	Label           string      `yaml:"label"`           // 显示名
	WinGoal         float64     `yaml:"winGoal"`         // 胜利所需进度
	DropSpeed       float64     `yaml:"dropSpeed"`       // 初始下落速度（像素/帧）
	SpawnIntervalMs float64     `yaml:"spawnIntervalMs"` // 初始生成间隔（毫秒）
	DirtyRatio      float64     `yaml:"dirtyRatio"`      // 初始污水概率
	Drift           DriftConfig `yaml:"drift"`           // 每次生成后的难度漂移
}

// DriftConfig 难度随时间的线性漂移
// 每生成一个水滴执行一次：污水率和速度上升（有上限），生成间隔缩短（有下限）
type DriftConfig struct {
	DirtyRatioStep    float64 `yaml:"dirtyRatioStep"`
	DirtyRatioMax     float64 `yaml:"dirtyRatioMax"`
	DropSpeedStep     float64 `yaml:"dropSpeedStep"`
	DropSpeedMax      float64 `yaml:"dropSpeedMax"`
	SpawnIntervalStep float64 `yaml:"spawnIntervalStep"`
	SpawnIntervalMin  float64 `yaml:"spawnIntervalMin"`
}

// DefaultDifficultyConfig 返回内置难度表（与 data/difficulty.yaml 一致）
// 内嵌资源不可用时使用
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		Default: "normal",
		Order:   []string{"easy", "normal", "hard"},
		Scoring: ScoringConfig{CleanGain: 10, DirtyPenalty: 15},
		Presets: map[string]*DifficultyPreset{
			"easy": {
				Label:           "Easy",
				WinGoal:         100,
				DropSpeed:       1.5,
				SpawnIntervalMs: 1100,
				DirtyRatio:      0.12,
				Drift: DriftConfig{
					DirtyRatioStep: 0.005, DirtyRatioMax: 0.35,
					DropSpeedStep: 0.01, DropSpeedMax: 3,
					SpawnIntervalStep: 2, SpawnIntervalMin: 700,
				},
			},
			"normal": {
				Label:           "Normal",
				WinGoal:         100,
				DropSpeed:       2.5,
				SpawnIntervalMs: 700,
				DirtyRatio:      0.25,
				Drift: DriftConfig{
					DirtyRatioStep: 0.01, DirtyRatioMax: 0.95,
					DropSpeedStep: 0.02, DropSpeedMax: 8,
					SpawnIntervalStep: 4, SpawnIntervalMin: 300,
				},
			},
			"hard": {
				Label:           "Hard",
				WinGoal:         100,
				DropSpeed:       4,
				SpawnIntervalMs: 500,
				DirtyRatio:      0.32,
				Drift: DriftConfig{
					DirtyRatioStep: 0.007, DirtyRatioMax: 0.95,
					DropSpeedStep: 0.05, DropSpeedMax: 10,
					SpawnIntervalStep: 8, SpawnIntervalMin: 250,
				},
			},
		},
	}
}

// LoadDifficultyConfig 从内嵌资源加载难度表
// 路径以 "data/" 开头时读取内嵌资源，否则读取磁盘文件（-tuning 参数）
func LoadDifficultyConfig(path string) (*DifficultyConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file: %w", err)
	}
	return ParseDifficultyConfig(data)
}

// LoadDifficultyConfigOrDefault 加载难度表，失败时退回内置表
func LoadDifficultyConfigOrDefault(path string) *DifficultyConfig {
	cfg, err := LoadDifficultyConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in difficulty table)", err)
		return DefaultDifficultyConfig()
	}
	log.Printf("[Config] 加载难度表: %s (%d presets)", path, len(cfg.Presets))
	return cfg
}

// ParseDifficultyConfig 解析并验证 YAML 难度表
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	var config DifficultyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}

	if err := validateDifficultyConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return &config, nil
}

// Preset 按名称获取难度预设
func (c *DifficultyConfig) Preset(name string) (*DifficultyPreset, error) {
	preset, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", name)
	}
	return preset, nil
}

// PresetNames 返回显示顺序的难度名列表
// 未出现在 order 中的预设不显示
func (c *DifficultyConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Order))
	for _, name := range c.Order {
		if _, ok := c.Presets[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// validateDifficultyConfig 验证配置的有效性
func validateDifficultyConfig(config *DifficultyConfig) error {
	if len(config.Presets) == 0 {
		return fmt.Errorf("presets cannot be empty")
	}

	if config.Default == "" {
		return fmt.Errorf("default difficulty cannot be empty")
	}
	if _, ok := config.Presets[config.Default]; !ok {
		return fmt.Errorf("default difficulty %q has no preset", config.Default)
	}

	for _, name := range config.Order {
		if _, ok := config.Presets[name]; !ok {
			return fmt.Errorf("order lists unknown difficulty %q", name)
		}
	}

	if config.Scoring.CleanGain <= 0 {
		return fmt.Errorf("scoring.cleanGain must be > 0, got %g", config.Scoring.CleanGain)
	}
	if config.Scoring.DirtyPenalty < 0 {
		return fmt.Errorf("scoring.dirtyPenalty must be >= 0, got %g", config.Scoring.DirtyPenalty)
	}

	for name, p := range config.Presets {
		if p == nil {
			return fmt.Errorf("preset %s is empty", name)
		}
		if p.WinGoal <= 0 {
			return fmt.Errorf("preset %s: winGoal must be > 0, got %g", name, p.WinGoal)
		}
		if p.DropSpeed <= 0 {
			return fmt.Errorf("preset %s: dropSpeed must be > 0, got %g", name, p.DropSpeed)
		}
		if p.SpawnIntervalMs <= 0 {
			return fmt.Errorf("preset %s: spawnIntervalMs must be > 0, got %g", name, p.SpawnIntervalMs)
		}
		if p.DirtyRatio < 0 || p.DirtyRatio > 1 {
			return fmt.Errorf("preset %s: dirtyRatio must be between 0 and 1, got %g", name, p.DirtyRatio)
		}

		d := p.Drift
		if d.DirtyRatioMax < p.DirtyRatio || d.DirtyRatioMax > 1 {
			return fmt.Errorf("preset %s: drift.dirtyRatioMax must be between dirtyRatio and 1, got %g", name, d.DirtyRatioMax)
		}
		if d.DropSpeedMax < p.DropSpeed {
			return fmt.Errorf("preset %s: drift.dropSpeedMax %g is below dropSpeed %g", name, d.DropSpeedMax, p.DropSpeed)
		}
		if d.SpawnIntervalMin <= 0 {
			return fmt.Errorf("preset %s: drift.spawnIntervalMin must be > 0, got %g", name, d.SpawnIntervalMin)
		}
		if d.SpawnIntervalMin > p.SpawnIntervalMs {
			return fmt.Errorf("preset %s: drift.spawnIntervalMin %g is above spawnIntervalMs %g", name, d.SpawnIntervalMin, p.SpawnIntervalMs)
		}
		if d.DirtyRatioStep < 0 || d.DropSpeedStep < 0 || d.SpawnIntervalStep < 0 {
			return fmt.Errorf("preset %s: drift steps must be >= 0", name)
		}
	}

	return nil
}

// readConfigFile 读取配置文件
// "data/" 前缀走内嵌资源，其余路径读磁盘
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
