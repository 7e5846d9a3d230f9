package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"bigocheck/internal/config"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher re-runs analysis when watched snippet files change. fsnotify
// watches directories, so we watch each file's parent and filter events down
// to the files we were asked about.
type FileWatcher struct {
	watcher      *fsnotify.Watcher
	config       *config.Config
	watchedFiles map[string]bool
	watchedDirs  map[string]bool
	debouncer    *debouncer
}

type FileChangeEvent struct {
	Path      string
	Operation string
	Timestamp time.Time
}

type FileChangeHandler func([]string) error

func NewFileWatcher(cfg *config.Config) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw := &FileWatcher{
		watcher:      watcher,
		config:       cfg,
		watchedFiles: make(map[string]bool),
		watchedDirs:  make(map[string]bool),
		debouncer:    newDebouncer(500 * time.Millisecond), // 500ms debounce
	}
	return fw, nil
}

// Watch registers the snippet files and starts the event loop.
func (fw *FileWatcher) Watch(paths []string, handler FileChangeHandler) error {
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", path, err)
		}
		fw.watchedFiles[abs] = true

		dir := filepath.Dir(abs)
		if !fw.watchedDirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
			fw.watchedDirs[dir] = true
		}
	}
	go fw.eventLoop(handler)
	return nil
}

func (fw *FileWatcher) eventLoop(handler FileChangeHandler) {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event, handler)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("File watcher error: %v\n", err)
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event, handler FileChangeHandler) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !fw.watchedFiles[abs] {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	changeEvent := FileChangeEvent{
		Path:      abs,
		Operation: fw.eventOpToString(event.Op),
		Timestamp: time.Now(),
	}
	fw.debouncer.add(changeEvent, handler)
}

func (fw *FileWatcher) eventOpToString(op fsnotify.Op) string {
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return "CREATE"
	case op&fsnotify.Write == fsnotify.Write:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

func (fw *FileWatcher) Close() error {
	fw.debouncer.stop()
	return fw.watcher.Close()
}

func (fw *FileWatcher) GetWatchedPaths() []string {
	paths := make([]string, 0, len(fw.watchedFiles))
	for path := range fw.watchedFiles {
		paths = append(paths, path)
	}
	return paths
}
