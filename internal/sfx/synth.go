// Package sfx 合成游戏音效
//
// 游戏没有音频素材，三种音效（水滴入桶、胜利、失败）都用 beep 的流式接口
// 由振荡器 + 包络实时合成：桌面端渲染成 16 位 PCM 交给 ebiten 播放，
// 终端版直接交给 beep/speaker。
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate 音效采样率（与 ebiten 音频上下文一致）
const SampleRate = beep.SampleRate(48000)

// Wave 振荡器波形
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
)

// sweep 线性扫频振荡器
// 频率在持续时间内从 from 线性变化到 to；from == to 即固定音高
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate

	phase    float64
	position int
	total    int
}

// NewTone 创建固定音高的振荡器
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep 创建扫频振荡器
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope 起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 给流加上线性起音和释音
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量（0 为静音）
// effects.Volume 以 2 为底取对数，Log2(0) 为 -Inf，需单独处理
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note 单个音符：振荡器 + 包络
func note(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return NewEnvelope(NewTone(freq, d, wave, SampleRate), d, 5*time.Millisecond, d/2, SampleRate)
}
