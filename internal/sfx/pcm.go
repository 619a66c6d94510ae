package sfx

import (
	"fmt"

	"github.com/gopxl/beep"

	"github.com/decker502/cleandrop/pkg/game"
)

// PCMFormat ebiten audio.NewPlayerFromBytes 需要的格式：16 位有符号小端立体声
var PCMFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// RenderPCM 把有限长的流渲染成 PCM 字节
func RenderPCM(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("streamer cannot be nil")
	}

	buf := make([][2]float64, 512)
	frame := make([]byte, PCMFormat.Width())
	var out []byte

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			PCMFormat.EncodeSigned(frame, buf[i])
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render sound: %w", err)
	}
	return out, nil
}

// RenderAll 渲染全部音效
func RenderAll(volume float64) (map[game.SoundID][]byte, error) {
	cues := make(map[game.SoundID][]byte, len(game.AllSounds()))
	for _, id := range game.AllSounds() {
		s, err := NewCue(id, volume)
		if err != nil {
			return nil, err
		}
		pcm, err := RenderPCM(s)
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", id, err)
		}
		cues[id] = pcm
	}
	return cues, nil
}
