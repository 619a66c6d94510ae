package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// DifficultyStore 当前生效的难度表
// 文件监视 goroutine 写入，游戏循环在每个回合开始时读取
type DifficultyStore struct {
	current atomic.Pointer[DifficultyConfig]
}

// NewDifficultyStore 创建难度表存储
func NewDifficultyStore(initial *DifficultyConfig) *DifficultyStore {
	s := &DifficultyStore{}
	if initial == nil {
		initial = DefaultDifficultyConfig()
	}
	s.current.Store(initial)
	return s
}

// Load 返回当前难度表
func (s *DifficultyStore) Load() *DifficultyConfig {
	return s.current.Load()
}

// Store 替换难度表（下一回合生效）
func (s *DifficultyStore) Store(cfg *DifficultyConfig) {
	if cfg != nil {
		s.current.Store(cfg)
	}
}

// LoadDifficultyFile 从磁盘读取难度表（不经过内嵌资源）
func LoadDifficultyFile(path string) (*DifficultyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file: %w", err)
	}
	return ParseDifficultyConfig(data)
}

// TuningWatcher 监视磁盘上的难度表文件，修改后重新加载
//
// 监视的是文件所在目录：编辑器保存时常以"写临时文件再改名"的方式替换文件，
// 直接监视文件会在第一次保存后丢失监视。
type TuningWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*DifficultyConfig)

	wg        sync.WaitGroup
	closeOnce sync.Once
	cancel    context.CancelFunc
}

// NewTuningWatcher 创建难度表监视器
// onReload 只会收到通过验证的难度表；解析失败时保留旧表并记录警告
func NewTuningWatcher(path string, onReload func(*DifficultyConfig)) (*TuningWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tuning path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &TuningWatcher{
		path:     absPath,
		watcher:  watcher,
		onReload: onReload,
	}, nil
}

// Start 启动监视 goroutine，ctx 取消或调用 Close 后退出
func (w *TuningWatcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
	}()

	log.Printf("[TuningWatcher] Watching %s", w.path)
}

// Close 停止监视并等待 goroutine 退出
func (w *TuningWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *TuningWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[TuningWatcher] Warning: watcher error: %v", err)
		}
	}
}

// reload 重新读取难度表
func (w *TuningWatcher) reload() {
	cfg, err := LoadDifficultyFile(w.path)
	if err != nil {
		// 保存过程中文件可能短暂为空，下一次写事件会再次触发
		log.Printf("[TuningWatcher] Warning: reload failed: %v (keeping previous table)", err)
		return
	}

	log.Printf("[TuningWatcher] Reloaded %s (%d presets)", w.path, len(cfg.Presets))
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
