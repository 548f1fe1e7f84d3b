// Package app wires the grid engine, the terminal UI, commands and plugins
// together and runs the main loop.
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/core"
	"github.com/bethropolis/tabula/internal/event"
	"github.com/bethropolis/tabula/internal/fileio"
	"github.com/bethropolis/tabula/internal/input"
	"github.com/bethropolis/tabula/internal/layout"
	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/modehandler"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/statusbar"
	"github.com/bethropolis/tabula/internal/theme"
	"github.com/bethropolis/tabula/internal/tui"
	"github.com/bethropolis/tabula/internal/workbook"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
//
// Everything that touches the editor runs on the goroutine that called Run.
// Terminal events arrive over a channel and other goroutines hand work over
// with RunOnMainLoop.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     *appEditorAPI

	quit          chan struct{} // closed by the mode handler
	done          chan struct{} // closed once the main loop stops
	events        chan tcell.Event
	redrawRequest chan struct{}
	taskWakeup    chan struct{}

	taskMutex sync.Mutex
	tasks     []func()
}

// NewApp opens the terminal and loads filePath ("" for an unnamed workbook).
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(cfg, filePath, screen)
}

// NewWithScreen is NewApp on a caller-supplied screen.
func NewWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := newThemeManager(cfg)
	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	wb, err := loadWorkbook(filePath)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}

	lay := layout.New(cfg.Editor.DefaultColumnWidth, cfg.Editor.MinColumnWidth, cfg.Editor.MaxColumnWidth)
	editor := core.NewEditor(wb, lay, core.OptionsFromConfig(cfg.Editor))
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	statusBar := statusbar.New(statusbar.ConfigFromTheme(themeManager.Current()))
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		quit:          quitChan,
		done:          make(chan struct{}),
		events:        make(chan tcell.Event, 16),
		redrawRequest: make(chan struct{}, 1),
		taskWakeup:    make(chan struct{}, 1),
	}
	a.editorAPI = newEditorAPI(a)

	eventManager.Subscribe(event.TypeNotification, a.handleNotification)
	eventManager.Subscribe(event.TypeWorkbookSaved, a.handleWorkbookSaved)

	registerCommands(a)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	a.resize()
	eventManager.Dispatch(event.TypeWorkbookLoaded, event.WorkbookLoadedData{FilePath: wb.FilePath()})
	return a, nil
}

func newThemeManager(cfg *config.Config) *theme.Manager {
	mgr := theme.NewManager(config.ThemesDir())
	if cfg.Editor.ThemeFile == "" {
		return mgr
	}
	t, err := mgr.LoadFile(cfg.Editor.ThemeFile)
	if err != nil {
		logger.Warnf("App: Failed to load theme file '%s': %v", cfg.Editor.ThemeFile, err)
		return mgr
	}
	if err := mgr.SetTheme(t.Name); err != nil {
		logger.Warnf("App: %v", err)
	}
	return mgr
}

func loadWorkbook(filePath string) (*workbook.Workbook, error) {
	if filePath == "" {
		logger.Infof("App: No file specified, starting empty")
		return workbook.New(""), nil
	}
	wb, err := fileio.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load '%s': %w", filePath, err)
	}
	return wb, nil
}

// Run starts the application's main loop and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Tabula - :help for commands | Ctrl+S Save | Ctrl+Q Quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.shutdown()
			return nil
		case ev := <-a.events:
			if a.handleTerminalEvent(ev) {
				a.drawEditor()
			}
		case <-a.taskWakeup:
			a.runTasks()
			a.drawEditor()
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

func (a *App) shutdown() {
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	close(a.done)
	a.pluginManager.ShutdownPlugins()
	if a.editor.Workbook().IsModified() {
		logger.Warnf("App: Exited with unsaved changes.")
	}
	logger.Infof("App: Exiting application.")
}

// pollEvents forwards terminal events to the main loop until the screen is
// closed or the loop stops.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// handleTerminalEvent reports whether the screen needs a redraw.
func (a *App) handleTerminalEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.resize()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// RunOnMainLoop queues fn to run on the main loop. It never blocks; work
// queued after shutdown is dropped.
func (a *App) RunOnMainLoop(fn func()) {
	a.taskMutex.Lock()
	a.tasks = append(a.tasks, fn)
	a.taskMutex.Unlock()

	select {
	case a.taskWakeup <- struct{}{}:
	default:
	}
}

func (a *App) runTasks() {
	a.taskMutex.Lock()
	tasks := a.tasks
	a.tasks = nil
	a.taskMutex.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// SaveWorkbook writes every sheet and marks the workbook saved.
func (a *App) SaveWorkbook() error {
	wb := a.editor.Workbook()
	written, err := fileio.Save(wb)
	if err != nil {
		return err
	}
	a.editor.MarkSaved()
	logger.Infof("App: Saved %v", written)
	a.eventManager.Dispatch(event.TypeWorkbookSaved, event.WorkbookSavedData{FilePath: wb.FilePath()})
	return nil
}

// SetTheme activates a theme by name and restyles the UI.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(current))
	a.tuiManager.SetTheme(current)
	a.requestRedraw()
	return nil
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.themeManager.Current()
}
