// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置表。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
// 参数接受 fs.FS，测试中可传入 fstest.MapFS
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// Reset 清除初始化状态（测试用）
func Reset() {
	dataFS = nil
	initialized = false
}

// normalize 标准化路径并检查前缀
// 路径必须以 "data/" 开头
func normalize(path string) (string, error) {
	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open 打开内嵌文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取内嵌文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于内嵌资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在内嵌资源中匹配文件
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}
