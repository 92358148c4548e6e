package sound

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a clip configuration file whenever it changes on
// disk. Parsed configs are delivered on Configs; the consumer applies them on
// its own goroutine.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// WatchConfig starts watching path. The parent directory is watched so that
// editors which replace the file on save are still picked up.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    abs,
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.run()
	return cw, nil
}

// Close stops the watcher and closes both channels.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		cw.wg.Wait()
		close(cw.Configs)
		close(cw.Errors)
	})
	return err
}

func (cw *ConfigWatcher) run() {
	defer cw.wg.Done()

	// Saves usually arrive as several events; reload once they settle.
	settle := time.NewTimer(reloadDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			settle.Reset(reloadDebounce)
		case <-settle.C:
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	c, err := LoadConfigFile(cw.path)
	if err != nil {
		cw.sendErr(err)
		return
	}
	log.Printf("[Audio] reloaded %s", cw.path)

	// Only the newest config matters.
	select {
	case <-cw.Configs:
	default:
	}
	select {
	case cw.Configs <- c:
	default:
	}
}

func (cw *ConfigWatcher) sendErr(err error) {
	select {
	case cw.Errors <- err:
	default:
		log.Printf("Warning: sfx config watcher: %v", err)
	}
}
