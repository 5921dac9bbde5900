package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/picklist/internal/prefs"
	"github.com/five82/picklist/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	PrefsPath string
	Logger    *logrus.Entry
}

// listView is what the store listener writes into. It lives behind a
// pointer so every copy of Model sees the latest snapshot.
type listView struct {
	snapshot state.State
	changes  int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store       *state.Store
	view        *listView
	unsubscribe func()
	prefsPath   string
	log         *logrus.Entry

	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	cursor   int
	showHelp bool
}

// New creates a Bubble Tea model bound to opts.Store. The model subscribes
// to the store immediately; Close releases the subscription.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	m := Model{
		store:     opts.Store,
		view:      &listView{},
		prefsPath: prefsPath,
		log:       log,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
	}
	m.applyHelpStyles()

	if m.store != nil {
		view, store := m.view, m.store
		view.snapshot = store.GetState()
		m.unsubscribe = store.Subscribe(func() {
			view.snapshot = store.GetState()
			view.changes++
		})
	}
	return m
}

// Close detaches the model from its store. It is safe to call repeatedly.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("picklist")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.WithError(err).Warn("save theme preference")
		}

	case key.Matches(msg, m.keys.Add):
		if m.store != nil {
			m.store.AddItem()
			m.cursor = m.snapshot().Len() - 1
		}

	case key.Matches(msg, m.keys.Delete):
		if rec, ok := m.cursorRecord(); ok {
			m.store.DeleteItem(rec.Code)
		}

	case key.Matches(msg, m.keys.Select):
		if rec, ok := m.cursorRecord(); ok {
			m.store.SelectItem(rec.Code)
		}

	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.snapshot().Len() - 1
	}

	m.clampCursor()
	return m, nil
}

func (m Model) snapshot() state.State {
	return m.view.snapshot
}

func (m Model) cursorRecord() (state.Record, bool) {
	list := m.snapshot().List
	if m.store == nil || m.cursor < 0 || m.cursor >= len(list) {
		return state.Record{}, false
	}
	return list[m.cursor], true
}

func (m *Model) clampCursor() {
	n := m.snapshot().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyHelpStyles() {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))

	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
}

// renderMain renders header, record list and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	contentHeight := m.height - 2 // header + footer
	b.WriteString(m.renderList(m.width, contentHeight))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
