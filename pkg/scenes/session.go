package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/cleandrop/pkg/render"
	"github.com/decker502/cleandrop/pkg/systems"
	"github.com/decker502/cleandrop/pkg/world"
)

// Input 游戏画面使用的水桶输入
// input.Controller 实现此接口
type Input interface {
	systems.BucketInput
	Update()
	Reset()
}

// Session 各画面共享的状态
// World 在多个回合之间复用，Difficulty 记录标题画面最后选择的难度
type Session struct {
	World      *world.World
	Fonts      *render.Fonts
	Input      Input
	Difficulty string

	Manager *SceneManager
}

// NewSession 创建会话并把场景工厂挂到 SceneManager 上
func NewSession(w *world.World, fonts *render.Fonts, in Input, sm *SceneManager) (*Session, error) {
	if w == nil || fonts == nil || in == nil || sm == nil {
		return nil, fmt.Errorf("session requires world, fonts, input and scene manager")
	}

	s := &Session{
		World:      w,
		Fonts:      fonts,
		Input:      in,
		Difficulty: w.Difficulty().Default,
		Manager:    sm,
	}
	sm.SetSceneFactory(s.createScene)
	return s, nil
}

// createScene 场景工厂
func (s *Session) createScene(id SceneID) Scene {
	switch id {
	case SceneTitle:
		return NewTitleScene(s)
	case SceneGame:
		scene, err := NewGameScene(s)
		if err != nil {
			log.Printf("[Session] Error: %v", err)
			return nil
		}
		return scene
	case SceneEnd:
		return NewEndScene(s)
	}
	return nil
}
