// Package audio 在桌面/移动端通过 ebiten 播放合成音效
package audio

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/cleandrop/internal/sfx"
	"github.com/decker502/cleandrop/pkg/game"
)

// DefaultVolume 默认音效音量
const DefaultVolume = 0.8

// AudioManager 音频管理器
// 职责：
//   - 启动时把 sfx 合成的音效渲染成 PCM 并创建播放器
//   - 统一管理音量和静音
//   - 实现 game.SoundPlayer，供 DropSystem 播放音效
type AudioManager struct {
	context *audio.Context
	players map[game.SoundID]*audio.Player // 音效ID -> 播放器
	volume  float64
	muted   bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率需为 sfx.SampleRate
//
// 返回：
//   - *AudioManager: 音频管理器实例
//   - error: 上下文采样率不匹配或音效渲染失败
func NewAudioManager(ctx *audio.Context) (*AudioManager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio context cannot be nil")
	}
	if ctx.SampleRate() != int(sfx.SampleRate) {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), int(sfx.SampleRate))
	}

	cues, err := sfx.RenderAll(1.0)
	if err != nil {
		return nil, fmt.Errorf("failed to render sounds: %w", err)
	}

	am := &AudioManager{
		context: ctx,
		players: make(map[game.SoundID]*audio.Player, len(cues)),
		volume:  DefaultVolume,
	}
	for id, pcm := range cues {
		player := ctx.NewPlayerFromBytes(pcm)
		player.SetVolume(am.volume)
		am.players[id] = player
	}

	log.Printf("[AudioManager] Prepared %d sounds", len(am.players))
	return am, nil
}

// PlaySound 播放音效
// 同一音效再次播放时从头开始
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(id game.SoundID) bool {
	if am.muted {
		return false
	}

	player, ok := am.players[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return false
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// SetMuted 设置静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if muted {
		for _, player := range am.players {
			player.Pause()
		}
	}
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// SetVolume 设置音效音量 (0.0 ~ 1.0)
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
	for _, player := range am.players {
		player.SetVolume(volume)
	}
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.volume
}
