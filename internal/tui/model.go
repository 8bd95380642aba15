package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yumegusa/nekotoki/internal/models"
	"github.com/yumegusa/nekotoki/internal/stopwatch"
)

// inputMode is the high-level mode of the application: the clock, or one
// of the modal overlays on top of it.
type inputMode int

const (
	modeNormal inputMode = iota
	modeThemePick
	modeNewPreset
	modeHelp
)

// TickMsg drives the periodic display refresh.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// statusFlash is written by the stopwatch change callback and read by the
// view. A pointer field so the callback survives bubbletea's value copies.
type statusFlash struct {
	text  string
	until time.Time
}

const flashDuration = 2 * time.Second

// Model is the root bubbletea model: a clock floating over the star field.
type Model struct {
	ctx   context.Context
	db    Database
	sw    *stopwatch.Stopwatch
	flash *statusFlash

	prefs       models.Preferences
	theme       Theme
	backgrounds []models.BackgroundPreset
	bgIdx       int
	stars       *StarField

	mode        inputMode
	themeCursor int
	presetInput textinput.Model

	Message       string
	err           error
	width, height int
}

// NewModel builds the root model from persisted preferences, falling back
// to the config-file defaults for anything unset.
func NewModel(ctx context.Context, db Database, defaults models.Preferences) Model {
	prefs := db.LoadPreferences(ctx, defaults)

	backgrounds, err := db.GetBackgrounds(ctx)
	var loadErr error
	if err != nil {
		loadErr = err
	}
	bgIdx := 0
	for i, bg := range backgrounds {
		if bg.Name == prefs.Background {
			bgIdx = i
			break
		}
	}

	ti := textinput.New()
	ti.Placeholder = "name #rrggbb [#rrggbb]"
	ti.CharLimit = 40
	ti.Width = 36

	sw := stopwatch.New()
	flash := &statusFlash{}
	sw.OnChange(func() {
		switch sw.State() {
		case stopwatch.Running:
			flash.text = "▶ started"
		case stopwatch.Paused:
			flash.text = "⏸ paused"
		default:
			flash.text = "↺ reset"
		}
		flash.until = time.Now().Add(flashDuration)
	})

	return Model{
		ctx:         ctx,
		db:          db,
		sw:          sw,
		flash:       flash,
		prefs:       prefs,
		theme:       ResolveTheme(prefs.Theme),
		backgrounds: backgrounds,
		bgIdx:       bgIdx,
		stars:       NewStarField(time.Now().UnixNano()),
		presetInput: ti,
		err:         loadErr,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.prefs.TickInterval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.stars.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick(TickMsg) (tea.Model, tea.Cmd) {
	if m.prefs.StarsEnabled {
		m.stars.Twinkle()
	}
	return m, tickCmd(m.prefs.TickInterval)
}

// currentBackground returns the active preset, or a sensible zero preset
// before the list has loaded.
func (m Model) currentBackground() models.BackgroundPreset {
	if len(m.backgrounds) == 0 {
		return models.BackgroundPreset{Name: "none", Color: "#1a1b26", StarColor: "#c0caf5"}
	}
	if m.bgIdx >= len(m.backgrounds) {
		return m.backgrounds[0]
	}
	return m.backgrounds[m.bgIdx]
}

// Elapsed exposes the stopwatch reading for the view and tests.
func (m Model) Elapsed() time.Duration {
	return m.sw.Elapsed()
}

func (m *Model) setStatus(text string) {
	m.Message = text
}

func (m *Model) savePref(key, value string) {
	if err := m.db.SetSetting(m.ctx, key, value); err != nil {
		m.err = err
	}
}
