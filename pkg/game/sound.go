package game

// SoundID 音效标识
type SoundID string

const (
	SoundWater SoundID = "water" // 水滴落入桶中
	SoundWin   SoundID = "win"   // 胜利
	SoundLose  SoundID = "lose"  // 失败
)

// AllSounds 返回全部音效（预生成音频用）
func AllSounds() []SoundID {
	return []SoundID{SoundWater, SoundWin, SoundLose}
}

// SoundPlayer 播放音效的外部协作者
// 桌面端由 audio.AudioManager 实现，终端版由 tui 实现，测试和模拟器使用 NopSoundPlayer
type SoundPlayer interface {
	PlaySound(id SoundID) bool
}

// NopSoundPlayer 静音实现
type NopSoundPlayer struct{}

// PlaySound 不播放任何声音
func (NopSoundPlayer) PlaySound(SoundID) bool { return false }
