package app

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/desksim/internal/clock"
	"github.com/kmacinski/desksim/internal/config"
	"github.com/kmacinski/desksim/internal/keys"
	"github.com/kmacinski/desksim/internal/layout"
	"github.com/kmacinski/desksim/internal/ui"
	"github.com/kmacinski/desksim/internal/watcher"
	"github.com/kmacinski/desksim/internal/window"
	"github.com/kmacinski/desksim/internal/wm"
)

// systemRefresh is the sampling period of the system monitor
const systemRefresh = 2 * time.Second

// Catalog is the fixed set of applications, in taskbar order
var Catalog = []wm.App{
	{Name: "calculator", Label: "Calculator", Icon: "[#]"},
	{Name: "notepad", Label: "Notepad", Icon: "[~]"},
	{Name: "system", Label: "System", Icon: "[%]"},
	{Name: "help", Label: "Help", Icon: "[?]"},
}

// Options configures an App
type Options struct {
	Config     *config.Config
	ConfigPath string // watched for changes when set
	Logger     *slog.Logger
	Rand       *rand.Rand // window placement; seeded from the time when nil
	NoClock    bool
}

// App is the main application model
type App struct {
	state    *State
	cfg      *config.Config
	cfgPath  string
	registry *config.KeybindRegistry
	keys     keys.KeyMap
	styles   ui.Styles
	layout   *layout.Manager
	clock    *clock.Clock
	noClock  bool
	log      *slog.Logger

	// Windows
	calculator *window.Calculator
	notepad    *window.Notepad
	system     *window.System
	help       *window.Help

	// Window registry
	windows map[string]window.Window

	// Dimensions
	width  int
	height int

	// Config watcher
	watcher *watcher.FileWatcher
	program *tea.Program

	// now returns the current time; replaced in tests
	now func() time.Time
}

// New creates a new application
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	registry := config.NewKeybindRegistry(cfg)
	km := keys.New(registry)
	styles := ui.NewStyles(ui.ColorsFrom(cfg.Colors))

	wins := wm.New(wm.Options{
		Apps:          Catalog,
		DefaultWidth:  cfg.Windows.Width,
		DefaultHeight: cfg.Windows.Height,
		TopChrome:     layout.TopChrome,
		TaskbarHeight: layout.TaskbarHeight,
		Rand:          opts.Rand,
		Logger:        logger,
	})

	// Create windows
	calculator := window.NewCalculator(styles, km)
	notepad := window.NewNotepad(styles)
	system := window.NewSystem(styles)
	help := window.NewHelp(styles, km)

	a := &App{
		state:      NewState(wins),
		cfg:        cfg,
		cfgPath:    opts.ConfigPath,
		registry:   registry,
		keys:       km,
		styles:     styles,
		layout:     layout.NewManager(styles),
		clock:      clock.New(cfg.ClockInterval(), cfg.Clock.Format),
		noClock:    opts.NoClock,
		log:        logger,
		calculator: calculator,
		notepad:    notepad,
		system:     system,
		help:       help,
		windows: map[string]window.Window{
			calculator.Name(): calculator,
			notepad.Name():    notepad,
			system.Name():     system,
			help.Name():       help,
		},
		now: time.Now,
	}

	a.clock.SetDisplay(wins.Taskbar())
	a.layout.SetShowClock(!opts.NoClock && !cfg.Clock.Hidden)

	return a
}

// SetProgram sets the tea.Program reference and starts watching the config file
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.cfgPath == "" {
		return
	}

	w, err := watcher.New(a.cfgPath, 300*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(ConfigChangedMsg{})
		}
	}, a.log)
	if err != nil {
		a.log.Warn("config watcher disabled", "path", a.cfgPath, "err", err)
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher and the clock
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.clock.Stop()
}

// Init starts the clock and the system monitor refresh
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{systemTick()}
	if !a.noClock {
		cmds = append(cmds, a.clock.Start())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		a.state.Windows.Resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if c, ok := keyCommands[a.registry.ActionFor(msg.String())]; ok {
			return a, a.Dispatch(c)
		}

		// Delegate to focused window
		return a, a.delegateToFocused(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case clock.TickMsg:
		a.state.ExpireStatus(msg.Time)
		return a, a.clock.Update(msg)

	case SystemTickMsg:
		// also expires the status when the clock is off
		a.state.ExpireStatus(a.now())
		var cmds []tea.Cmd
		if a.state.Windows.IsActive(a.system.Name()) {
			cmds = append(cmds, window.Sample())
		}
		cmds = append(cmds, systemTick())
		return a, tea.Batch(cmds...)

	case window.SampleMsg:
		a.system.SetSample(msg)
		if msg.Err != nil {
			a.log.Warn("system sample incomplete", "err", msg.Err)
		}
		return a, nil

	case window.StatusMsg:
		if msg.Err != nil {
			a.log.Warn("window action failed", "err", msg.Err)
			a.state.SetStatus("Error: "+msg.Err.Error(), a.now())
			return a, nil
		}
		a.state.SetStatus(msg.Text, a.now())
		return a, nil

	case ConfigChangedMsg:
		if err := a.reloadConfig(); err != nil {
			a.log.Warn("config reload failed", "path", a.cfgPath, "err", err)
			a.state.SetStatus("Config error: "+err.Error(), a.now())
			return a, nil
		}
		a.log.Info("config reloaded", "path", a.cfgPath)
		a.state.SetStatus("Config reloaded", a.now())
		return a, nil
	}

	return a, nil
}

func (a *App) delegateToFocused(msg tea.Msg) tea.Cmd {
	w, ok := a.windows[a.state.Windows.Focused()]
	if !ok {
		return nil
	}
	_, cmd := w.Update(msg)
	return cmd
}

// syncFocus gives keyboard focus to the topmost window only
func (a *App) syncFocus() {
	focused := a.state.Windows.Focused()
	for name, w := range a.windows {
		if w.Focused() != (name == focused) {
			w.SetFocus(name == focused)
		}
	}
}

// reloadConfig rereads the config file and applies colors, clock and keybindings.
// Window sizes apply to the next start only.
func (a *App) reloadConfig() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	a.applyConfig(cfg)
	return nil
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.registry = config.NewKeybindRegistry(cfg)
	a.keys = keys.New(a.registry)
	a.styles = ui.NewStyles(ui.ColorsFrom(cfg.Colors))

	a.layout.SetStyles(a.styles)
	a.layout.SetShowClock(!a.noClock && !cfg.Clock.Hidden)
	a.calculator.SetStyles(a.styles)
	a.calculator.SetKeyMap(a.keys)
	a.notepad.SetStyles(a.styles)
	a.system.SetStyles(a.styles)
	a.help.SetStyles(a.styles)
	a.help.SetKeyMap(a.keys)

	if a.clock.Format() != cfg.Clock.Format {
		a.clock.SetFormat(cfg.Clock.Format)
		if !a.noClock {
			a.state.Windows.Taskbar().SetTime(a.now().Format(cfg.Clock.Format))
		}
	}
}

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	return a.layout.Render(layout.Scene{
		Windows:  a.state.Windows,
		Contents: a.windows,
		Status:   a.state.Status,
		Title:    "desksim",
	})
}

func systemTick() tea.Cmd {
	return tea.Tick(systemRefresh, func(time.Time) tea.Msg {
		return SystemTickMsg{}
	})
}
