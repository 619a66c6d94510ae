package config

import (
	"fmt"
	"log"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultMessagesPath 内嵌文案表路径
const DefaultMessagesPath = "data/messages.yaml"

// MessageConfig 游戏文案配置：里程碑提示与结算文案
type MessageConfig struct {
	Milestones        []Milestone       `yaml:"milestones"`        // 按分数升序
	WinMessages       map[string]string `yaml:"winMessages"`       // 难度名 -> 胜利文案
	DefaultWinMessage string            `yaml:"defaultWinMessage"` // 未配置难度时的胜利文案
	LoseMessage       string            `yaml:"loseMessage"`       // 失败文案
}

// Milestone 进度里程碑
type Milestone struct {
	Score   float64 `yaml:"score"`
	Message string  `yaml:"message"`
}

// DefaultMessageConfig 返回内置文案表
func DefaultMessageConfig() *MessageConfig {
	return &MessageConfig{
		Milestones: []Milestone{
			{Score: 10, Message: "Great start!"},
			{Score: 50, Message: "Halfway there!"},
			{Score: 80, Message: "Almost full!"},
		},
		WinMessages: map[string]string{
			"easy": "Great job! You filled most of the bucket. Try harder modes for a bigger challenge!",
			"hard": "Amazing! You overfilled the bucket in Hard mode!",
		},
		DefaultWinMessage: "Congratulations!\nEvery drop matters. Millions still don’t have access to clean water.",
		LoseMessage:       "Try again. Avoid the dirty drops.",
	}
}

// LoadMessageConfig 加载文案表
func LoadMessageConfig(path string) (*MessageConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}
	return ParseMessageConfig(data)
}

// LoadMessageConfigOrDefault 加载文案表，失败时退回内置表
func LoadMessageConfigOrDefault(path string) *MessageConfig {
	cfg, err := LoadMessageConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in messages)", err)
		return DefaultMessageConfig()
	}
	return cfg
}

// ParseMessageConfig 解析并验证 YAML 文案表
// 里程碑按分数升序排列
func ParseMessageConfig(data []byte) (*MessageConfig, error) {
	var config MessageConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse messages YAML: %w", err)
	}

	if err := validateMessageConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid messages config: %w", err)
	}

	sort.SliceStable(config.Milestones, func(i, j int) bool {
		return config.Milestones[i].Score < config.Milestones[j].Score
	})

	return &config, nil
}

// WinMessage 返回指定难度的胜利文案
func (c *MessageConfig) WinMessage(difficulty string) string {
	if msg, ok := c.WinMessages[difficulty]; ok && msg != "" {
		return msg
	}
	return c.DefaultWinMessage
}

// validateMessageConfig 验证文案表
func validateMessageConfig(config *MessageConfig) error {
	seen := make(map[float64]bool, len(config.Milestones))
	for i, m := range config.Milestones {
		if m.Score <= 0 {
			return fmt.Errorf("milestones[%d]: score must be > 0, got %g", i, m.Score)
		}
		if m.Message == "" {
			return fmt.Errorf("milestones[%d]: message cannot be empty", i)
		}
		if seen[m.Score] {
			return fmt.Errorf("milestones[%d]: duplicate score %g", i, m.Score)
		}
		seen[m.Score] = true
	}

	if config.DefaultWinMessage == "" {
		return fmt.Errorf("defaultWinMessage cannot be empty")
	}
	if config.LoseMessage == "" {
		return fmt.Errorf("loseMessage cannot be empty")
	}

	return nil
}
