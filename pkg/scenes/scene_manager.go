package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按画面标识创建场景，避免场景之间相互引用
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回最近一次 LoadScene 加载的画面标识
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// LoadScene 通过工厂创建并切换到指定画面
// 工厂返回 nil 时保持当前画面
func (sm *SceneManager) LoadScene(id SceneID) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		log.Printf("[SceneManager] Error: cannot create scene %q", id)
		return false
	}

	sm.SwitchTo(scene)
	sm.currentID = id
	log.Printf("[SceneManager] Switched to %s", id)
	return true
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
