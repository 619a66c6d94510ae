package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"

	"github.com/decker502/cleandrop/pkg/game"
)

// 音符频率（Hz）
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// NewWaterCue 水滴入桶：快速下滑的"咕嘟"声
func NewWaterCue() beep.Streamer {
	const d = 110 * time.Millisecond
	drop := NewEnvelope(NewSweep(1400, 420, d, WaveSine, SampleRate), d, 2*time.Millisecond, 60*time.Millisecond, SampleRate)

	const d2 = 60 * time.Millisecond
	bubble := NewEnvelope(NewSweep(700, 1100, d2, WaveSine, SampleRate), d2, 2*time.Millisecond, 40*time.Millisecond, SampleRate)

	return beep.Seq(drop, beep.Silence(SampleRate.N(15*time.Millisecond)), newVolume(bubble, 0.5))
}

// NewWinCue 胜利：上行琶音
func NewWinCue() beep.Streamer {
	const step = 110 * time.Millisecond
	melody := beep.Seq(
		note(noteC5, step, WaveTriangle),
		note(noteE5, step, WaveTriangle),
		note(noteG5, step, WaveTriangle),
		note(noteC6, 3*step, WaveTriangle),
	)
	// 低八度和声
	bass := beep.Seq(
		beep.Silence(SampleRate.N(3*step)),
		note(noteC4, 3*step, WaveSine),
	)
	return beep.Mix(newVolume(melody, 0.8), newVolume(bass, 0.4))
}

// NewLoseCue 失败：下行三音
func NewLoseCue() beep.Streamer {
	const step = 180 * time.Millisecond
	return beep.Seq(
		note(noteG4, step, WaveSquare),
		note(noteE4, step, WaveSquare),
		note(noteC4, 2*step, WaveSquare),
	)
}

// NewCue 按音效ID创建音效流，volume 为线性音量 [0, 1]
func NewCue(id game.SoundID, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	switch id {
	case game.SoundWater:
		s = NewWaterCue()
	case game.SoundWin:
		s = NewWinCue()
	case game.SoundLose:
		s = NewLoseCue()
	default:
		return nil, fmt.Errorf("unknown sound %q", id)
	}
	return newVolume(s, volume), nil
}
