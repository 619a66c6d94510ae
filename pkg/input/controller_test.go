package input

import "testing"

// TestRepeatFires 测试按键重复节奏
func TestRepeatFires(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		expected bool
	}{
		{"未按下", 0, false},
		{"刚按下", 1, true},
		{"等待重复", 2, false},
		{"延迟前一帧", KeyRepeatDelay - 1, false},
		{"第一次重复", KeyRepeatDelay, true},
		{"重复间隔之间", KeyRepeatDelay + 1, false},
		{"第二次重复", KeyRepeatDelay + KeyRepeatInterval, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepeatFires(tt.duration, KeyRepeatDelay, KeyRepeatInterval); got != tt.expected {
				t.Errorf("RepeatFires(%d) = %v, 期望 %v", tt.duration, got, tt.expected)
			}
		})
	}
}

// TestRepeatStepsOverOneSecond 按住一秒移动的步数
func TestRepeatStepsOverOneSecond(t *testing.T) {
	steps := 0
	for d := 1; d <= 60; d++ {
		steps += keySteps(d)
	}
	// 第 1 帧 + 第 15、19、...、59 帧
	if steps != 1+12 {
		t.Errorf("steps in 60 frames = %d, want 13", steps)
	}
}

// TestControllerAdvance 拖动位移
func TestControllerAdvance(t *testing.T) {
	c := NewController()

	if dx := c.advance(100); dx != 0 {
		t.Errorf("first drag frame should not move, got %g", dx)
	}
	if dx := c.advance(112); dx != 12 {
		t.Errorf("drag delta = %g, want 12", dx)
	}
	if dx := c.advance(90); dx != -22 {
		t.Errorf("drag delta = %g, want -22", dx)
	}

	c.Reset()
	if dx := c.advance(10); dx != 0 {
		t.Errorf("drag after reset should restart, got %g", dx)
	}
	if c.Steps() != 0 || c.DragDelta() != 0 {
		t.Error("reset should clear frame input")
	}
}
