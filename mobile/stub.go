//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口
//
// 普通构建时包内只有本文件；绑定代码在 mobile.go 和 embed.go 中，
// 需要先把 data/ 复制到本目录，再执行：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.cleandrop ./mobile
package mobile
