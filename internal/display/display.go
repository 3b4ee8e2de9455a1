// Package display provides the terminal UI using Bubble Tea.
//
// The UI is a full-screen app with three screens: the search screen
// (criteria form + current batch), the favorites browser, and a recipe
// detail view layered over either. All session state lives in the
// engine; the model only holds cursor/focus state and re-reads a
// snapshot whenever the engine signals a change.
package display

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipegacha/internal/domain"
	"github.com/hammamikhairi/recipegacha/internal/engine"
	"github.com/hammamikhairi/recipegacha/internal/storage"
)

// UI owns the Bubble Tea program.
type UI struct {
	eng   *engine.Engine
	prefs *storage.PrefsStore
}

// New creates the display. Call Run() to start.
func New(eng *engine.Engine, prefs *storage.PrefsStore) *UI {
	return &UI{eng: eng, prefs: prefs}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	p := u.prefs.Load()

	m := newModel(u.eng, u.prefs, p.DarkMode)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// ── Form fields ──────────────────────────────────────────────────

type formField int

const (
	fieldMealType formField = iota
	fieldCookingTime
	fieldServings
	fieldCount
)

// screen identifies which top-level screen is visible. The detail view
// is not a screen; it overlays whichever screen opened it, driven by
// the engine's Selected.
type screen int

const (
	screenSearch screen = iota
	screenFavorites
)

// ── Model ────────────────────────────────────────────────────────

// changeMsg means the engine's session state moved; re-read the snapshot.
type changeMsg struct{}

type model struct {
	eng   *engine.Engine
	prefs *storage.PrefsStore

	sess domain.Session

	screen  screen
	focus   formField
	mealIdx int
	timeIdx int
	serving int

	cursor    int // results list
	favCursor int // favorites list

	spin   spinner.Model
	dark   bool
	styles palette
	width  int
	height int
}

func newModel(eng *engine.Engine, prefs *storage.PrefsStore, dark bool) model {
	styles := lightPalette()
	if dark {
		styles = darkPalette()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.accent

	return model{
		eng:     eng,
		prefs:   prefs,
		sess:    eng.Snapshot(),
		serving: domain.DefaultServings,
		spin:    sp,
		dark:    dark,
		styles:  styles,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForChange(m.eng.Changes()))
}

// waitForChange delivers the engine's next state-change signal as a msg.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return changeMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changeMsg:
		m.sess = m.eng.Snapshot()
		m.clampCursors()
		return m, waitForChange(m.eng.Changes())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys.
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "D":
		return m.toggleDarkMode(), nil
	}

	// Detail overlay captures input while open.
	if m.sess.Selected != nil {
		switch key {
		case "esc", "enter":
			m.eng.CloseDetails()
		case " ":
			m.eng.ToggleFavorite(*m.sess.Selected)
		}
		return m, nil
	}

	if m.screen == screenFavorites {
		return m.handleFavoritesKey(key)
	}
	return m.handleSearchKey(key)
}

func (m model) handleSearchKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab":
		m.focus = (m.focus + 1) % fieldCount
	case "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case "left", "h":
		m.adjustField(-1)
	case "right", "l":
		m.adjustField(+1)
	case "enter":
		m.eng.Search(context.Background(), m.criteria())
	case "r":
		// Ignored before the first search; the welcome screen says so.
		_ = m.eng.RepeatSearch(context.Background())
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sess.Results)-1 {
			m.cursor++
		}
	case "o":
		if r, ok := m.cursorRecipe(); ok {
			m.eng.ViewDetails(r)
		}
	case " ":
		if r, ok := m.cursorRecipe(); ok {
			m.eng.ToggleFavorite(r)
		}
	case "f":
		m.screen = screenFavorites
		m.favCursor = 0
	}
	return m, nil
}

func (m model) handleFavoritesKey(key string) (tea.Model, tea.Cmd) {
	favs := m.eng.Favorites()
	switch key {
	case "esc", "f":
		m.screen = screenSearch
	case "up", "k":
		if m.favCursor > 0 {
			m.favCursor--
		}
	case "down", "j":
		if m.favCursor < len(favs)-1 {
			m.favCursor++
		}
	case "o", "enter":
		if m.favCursor < len(favs) {
			m.eng.ViewDetails(favs[m.favCursor])
		}
	case " ":
		if m.favCursor < len(favs) {
			m.eng.ToggleFavorite(favs[m.favCursor])
			if m.favCursor >= len(favs)-1 && m.favCursor > 0 {
				m.favCursor--
			}
		}
	}
	return m, nil
}

// adjustField moves the focused form field by delta.
func (m *model) adjustField(delta int) {
	switch m.focus {
	case fieldMealType:
		n := len(domain.MealTypes())
		m.mealIdx = (m.mealIdx + delta + n) % n
	case fieldCookingTime:
		n := len(domain.CookingTimes())
		m.timeIdx = (m.timeIdx + delta + n) % n
	case fieldServings:
		m.serving += delta
		if m.serving < domain.MinServings {
			m.serving = domain.MinServings
		}
		if m.serving > domain.MaxServings {
			m.serving = domain.MaxServings
		}
	}
}

// criteria builds the search criteria from the form state.
func (m model) criteria() domain.Criteria {
	return domain.Criteria{
		MealType:    domain.MealTypes()[m.mealIdx],
		CookingTime: domain.CookingTimes()[m.timeIdx],
		Servings:    m.serving,
	}
}

func (m model) cursorRecipe() (domain.Recipe, bool) {
	if m.cursor >= 0 && m.cursor < len(m.sess.Results) {
		return m.sess.Results[m.cursor], true
	}
	return domain.Recipe{}, false
}

func (m *model) clampCursors() {
	if m.cursor > len(m.sess.Results)-1 {
		m.cursor = 0
	}
}

func (m model) toggleDarkMode() model {
	m.dark = !m.dark
	if m.dark {
		m.styles = darkPalette()
	} else {
		m.styles = lightPalette()
	}
	m.spin.Style = m.styles.accent

	// Preference persistence is best-effort; the toggle itself never fails.
	_ = m.prefs.Save(storage.Preferences{DarkMode: m.dark})
	return m
}
