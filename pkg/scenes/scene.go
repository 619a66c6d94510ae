// Package scenes 实现桌面/移动端的三个画面：标题（选择难度）、游戏、结算
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 画面接口
// deltaTime 为距上一帧的时间（秒）
type Scene interface {
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// SceneID 画面标识
type SceneID string

const (
	SceneTitle SceneID = "title"
	SceneGame  SceneID = "game"
	SceneEnd   SceneID = "end"
)
