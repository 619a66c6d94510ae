//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.cleandrop -o build/android/cleandrop.aar ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/CleanDrop.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/cleandrop/pkg/app"
	"github.com/decker502/cleandrop/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	// 移动端从标题画面开始，拖动控制水桶
	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
