// Package autosave periodically writes a recovery copy of a modified
// workbook next to the original file. The real file, the undo history and
// the modified flag are never touched; a successful :w removes the copy.
package autosave

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/plugin"
)

var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave writes recovery copies on a timer.
type AutoSave struct {
	api plugin.EditorAPI

	mutex    sync.RWMutex
	enabled  bool
	interval time.Duration

	// Only touched on the main loop.
	dirty   bool
	written []string

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() *AutoSave {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the timer if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	name := p.Name()

	p.mutex.Lock()
	if val, ok := api.GetPluginConfigValue(name, "enabled"); ok {
		if b, isBool := val.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, val, p.enabled)
		}
	}
	if val, ok := api.GetPluginConfigValue(name, "interval"); ok {
		if s, isStr := val.(string); isStr {
			d, err := time.ParseDuration(s)
			switch {
			case err != nil:
				logger.Warnf("%s: Invalid format for 'interval' config ('%s'): %v. Using default (%v)", name, s, err, p.interval)
			case d <= 0:
				logger.Warnf("%s: 'interval' config must be positive ('%s'). Using default (%v)", name, s, p.interval)
			default:
				p.interval = d
			}
		} else {
			logger.Warnf("%s: Invalid type for 'interval' config (%T), using default (%v)", name, val, p.interval)
		}
	}
	enabled, interval := p.enabled, p.interval
	p.mutex.Unlock()

	api.SubscribeEvent(event.TypeGridModified, p.handleGridModified)
	api.SubscribeEvent(event.TypeWorkbookSaved, p.handleWorkbookSaved)
	if err := api.RegisterCommand("autosave", p.executeAutoSave); err != nil {
		return fmt.Errorf("failed to register 'autosave' command: %w", err)
	}

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", name, enabled, interval)
	if enabled {
		p.start(interval)
	}
	return nil
}

// Shutdown stops the timer goroutine and waits for it.
func (p *AutoSave) Shutdown() error {
	p.stop()
	return nil
}

func (p *AutoSave) start(interval time.Duration) {
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.saverLoop(interval, p.stopChan)
}

func (p *AutoSave) stop() {
	if p.stopChan == nil {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	p.stopChan = nil
	logger.Debugf("%s: Saver goroutine stopped.", p.Name())
}

// saverLoop hands a save to the main loop on every tick.
func (p *AutoSave) saverLoop(interval time.Duration, stop <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.api.RunOnMainLoop(p.saveIfModified)
		case <-stop:
			return
		}
	}
}

// saveIfModified writes the recovery copy when the grid changed since the
// last one. It runs on the main loop.
func (p *AutoSave) saveIfModified() {
	if !p.dirty || !p.api.IsModified() {
		return
	}
	path := p.api.GetFilePath()
	if path == "" {
		logger.Debugf("%s: Workbook has no path, skipping auto-save.", p.Name())
		return
	}

	target := RecoveryPath(path)
	written, err := p.api.WriteCopy(target)
	p.written = appendUnique(p.written, written...)
	if err != nil {
		logger.Errorf("%s: Auto-save to '%s' failed: %v", p.Name(), target, err)
		return
	}
	p.dirty = false
	logger.Infof("%s: Wrote recovery copy %v", p.Name(), written)
}

func (p *AutoSave) handleGridModified(event.Event) bool {
	p.dirty = true
	return false
}

// handleWorkbookSaved removes the recovery files; the real file is current.
func (p *AutoSave) handleWorkbookSaved(event.Event) bool {
	for _, path := range p.written {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("%s: Could not remove recovery file '%s': %v", p.Name(), path, err)
		}
	}
	p.written = nil
	p.dirty = false
	return false
}

// executeAutoSave implements ":autosave [on|off|now]".
func (p *AutoSave) executeAutoSave(args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	switch sub {
	case "on":
		if !p.enabled {
			p.enabled = true
			p.start(p.interval)
		}
	case "off":
		if p.enabled {
			p.enabled = false
			p.stop()
		}
	case "now":
		p.dirty = true
		p.saveIfModified()
	case "status":
	default:
		return fmt.Errorf("Usage: :autosave [on|off|now]")
	}

	state := "off"
	if p.enabled {
		state = "on"
	}
	p.api.SetStatusMessage("Autosave %s (every %v)", state, p.interval)
	return nil
}

// RecoveryPath returns the hidden file a recovery copy of path is written
// to: /dir/book.csv becomes /dir/.book.autosave.csv.
func RecoveryPath(path string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, "."+stem+".autosave"+ext)
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
