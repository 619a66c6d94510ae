package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/decker502/cleandrop/internal/sfx"
	"github.com/decker502/cleandrop/pkg/game"
)

// DefaultVolume 终端版音量
const DefaultVolume = 0.8

// Speaker 通过系统扬声器播放合成音效（实现 game.SoundPlayer）
type Speaker struct {
	volume float64
	muted  bool
}

// NewSpeaker 初始化扬声器，缓冲 100ms
func NewSpeaker(muted bool) (*Speaker, error) {
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &Speaker{volume: DefaultVolume, muted: muted}, nil
}

// PlaySound 播放音效，静音时返回 false
func (s *Speaker) PlaySound(id game.SoundID) bool {
	if s.muted {
		return false
	}
	cue, err := sfx.NewCue(id, s.volume)
	if err != nil {
		log.Printf("[Speaker] Warning: %v", err)
		return false
	}
	speaker.Play(cue)
	return true
}

// SetMuted 设置静音
func (s *Speaker) SetMuted(muted bool) {
	s.muted = muted
}

// IsMuted 是否静音
func (s *Speaker) IsMuted() bool {
	return s.muted
}

// Close 关闭扬声器
func (s *Speaker) Close() {
	speaker.Close()
}
