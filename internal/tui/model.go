// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitor14i/postboard/internal/board"
	"github.com/vitor14i/postboard/internal/config"
	"github.com/vitor14i/postboard/internal/model"
	"github.com/vitor14i/postboard/internal/notify"
	"github.com/vitor14i/postboard/internal/theme"
)

// flashDuration is how long the like control stays highlighted after
// a like or unlike.
const flashDuration = 300 * time.Millisecond

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeCompose
	ModeConfirm
	ModeHelp
)

// Model is the main TUI model.
type Model struct {
	cfg    *config.Config
	board  *board.Board
	themes *theme.Manager

	mode   Mode
	active theme.Theme
	styles theme.Styles

	// Render pass state: copy of the collection, newest first.
	posts   []model.Post
	cursor  int
	offsets []int

	viewport   viewport.Model
	titleInput textinput.Model
	bodyInput  textarea.Model

	feed      *notify.Feed
	flashedID string // card with an active like-animation
	confirmID string // post awaiting delete confirmation

	width  int
	height int
	ready  bool

	keys KeyMap

	refreshCh <-chan board.ChangeEvent
}

type expireMsg struct{ id string }
type flashClearMsg struct{ id string }
type boardChangedMsg struct{}

// New creates a new TUI model.
func New(cfg *config.Config, b *board.Board, themes *theme.Manager) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 120

	bodyInput := textarea.New()
	bodyInput.Placeholder = "What's on your mind?"
	bodyInput.SetHeight(5)

	active := theme.Default
	if themes != nil {
		active = themes.Active()
	}

	m := Model{
		cfg:        cfg,
		board:      b,
		themes:     themes,
		mode:       ModeList,
		active:     active,
		styles:     theme.StylesFor(active),
		titleInput: titleInput,
		bodyInput:  bodyInput,
		feed:       notify.NewFeed(cfg.NotifyDuration()),
		keys:       DefaultKeyMap(),
	}

	if b != nil {
		m.refreshCh = b.Subscribe()
	}

	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.watchForChanges
}

// watchForChanges blocks on the board's change channel.
func (m Model) watchForChanges() tea.Msg {
	if m.refreshCh == nil {
		return nil
	}
	<-m.refreshCh
	return boardChangedMsg{}
}

// refresh re-fetches the collection and rebuilds the viewport content
// from scratch. Every mutation funnels through here: full replace, no
// diffing.
func (m *Model) refresh() {
	if m.board != nil {
		m.posts = m.board.Newest()
	}
	if m.cursor >= len(m.posts) {
		m.cursor = len(m.posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	content, offsets := renderBoard(m.posts, m.cursor, m.flashedID, m.styles, m.cardOptions())
	m.offsets = offsets
	m.viewport.SetContent(content)
	m.scrollToCursor()
}

func (m *Model) cardOptions() cardOptions {
	return cardOptions{
		dateFormat:    m.cfg.Board.DateFormat,
		relativeDates: m.cfg.Board.RelativeDates,
		width:         m.width,
	}
}

// scrollToCursor keeps the selected card inside the viewport.
func (m *Model) scrollToCursor() {
	if m.cursor < 0 || m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
		return
	}
	bottom := m.viewport.TotalLineCount()
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}
	if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// push adds a notification and schedules its expiry tick.
func (m *Model) push(text string, level notify.Level) tea.Cmd {
	n := m.feed.Push(text, level)
	return tea.Tick(m.feed.TTL(), func(time.Time) tea.Msg {
		return expireMsg{id: n.ID}
	})
}

// flash starts the brief like-animation on a card.
func (m *Model) flash(id string) tea.Cmd {
	m.flashedID = id
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header, feed and keybind bar take up to four rows
		vpHeight := msg.Height - 4
		if vpHeight < 0 {
			vpHeight = 0
		}
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.titleInput.Width = msg.Width - 4
		m.bodyInput.SetWidth(msg.Width - 4)
		m.refresh()
		return m, nil

	case boardChangedMsg:
		m.refresh()
		return m, m.watchForChanges

	case expireMsg:
		// The notification may already be gone (manual dismiss); a
		// stale timer must not act on a removed entry.
		m.feed.Expire(time.Now())
		m.feed.Dismiss(msg.id)
		return m, nil

	case flashClearMsg:
		if m.flashedID == msg.id {
			m.flashedID = ""
			m.refresh()
		}
		return m, nil
	}

	// Pass everything else to the focused component
	var cmd tea.Cmd
	switch m.mode {
	case ModeList:
		m.viewport, cmd = m.viewport.Update(msg)
	case ModeCompose:
		if m.titleInput.Focused() {
			m.titleInput, cmd = m.titleInput.Update(msg)
		} else {
			m.bodyInput, cmd = m.bodyInput.Update(msg)
		}
	}
	return m, cmd
}

// handleKey dispatches key presses by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Compose mode owns most keys; only esc and submit are global there.
	if m.mode == ModeCompose {
		return m.handleComposeKey(msg)
	}
	// The confirmation prompt answers every key itself.
	if m.mode == ModeConfirm {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeList
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
		}
		return m, nil
	}

	return m, nil
}

// handleListKey handles keys in list mode.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.posts)-1 {
			m.cursor++
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.End):
		if len(m.posts) > 0 {
			m.cursor = len(m.posts) - 1
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeCompose
		m.titleInput.SetValue("")
		m.bodyInput.SetValue("")
		m.bodyInput.Blur()
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Like):
		return m.likeSelected()

	case key.Matches(msg, m.keys.Unlike):
		return m.unlikeSelected()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.posts) {
			m.confirmID = m.posts[m.cursor].ID
			m.mode = ModeConfirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		// Close the oldest visible notification without waiting for
		// its timer; the others stay.
		if items := m.feed.Items(); len(items) > 0 {
			m.feed.Dismiss(items[0].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.ThemeToggle):
		return m.toggleTheme()
	}

	// Pass to viewport for paging keys
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// likeSelected increments the selected post's like counter.
func (m Model) likeSelected() (tea.Model, tea.Cmd) {
	if m.board == nil || m.cursor >= len(m.posts) {
		return m, nil
	}

	id := m.posts[m.cursor].ID
	if err := m.board.Like(id); err != nil {
		// Stale reference: ignore silently
		return m, nil
	}

	cmd := m.flash(id)
	m.refresh()
	return m, cmd
}

// unlikeSelected decrements the selected post's like counter.
func (m Model) unlikeSelected() (tea.Model, tea.Cmd) {
	if m.board == nil || m.cursor >= len(m.posts) {
		return m, nil
	}

	id := m.posts[m.cursor].ID
	err := m.board.Unlike(id)
	switch {
	case errors.Is(err, board.ErrNoLikes):
		return m, m.push("No likes to remove!", notify.LevelWarning)
	case err != nil:
		return m, nil
	}

	flashCmd := m.flash(id)
	m.refresh()
	return m, tea.Batch(flashCmd, m.push("Like removed!", notify.LevelInfo))
}

// toggleTheme flips the theme and restyles the whole view.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.themes == nil {
		return m, nil
	}

	next, err := m.themes.Toggle()
	if err != nil {
		return m, m.push("Failed to save theme: "+err.Error(), notify.LevelDanger)
	}

	m.active = next
	m.styles = theme.StylesFor(next)
	m.refresh()
	return m, nil
}

// handleConfirmKey handles the delete confirmation prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirmID
	m.confirmID = ""
	m.mode = ModeList

	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}

	if m.board == nil {
		return m, nil
	}

	// The collection may have changed since the prompt opened; the ID
	// is resolved to a position only now.
	if err := m.board.Remove(id); err != nil {
		return m, nil
	}

	m.refresh()
	return m, m.push("Post deleted!", notify.LevelDanger)
}

// handleComposeKey handles keys in compose mode.
func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeList
		m.titleInput.Blur()
		m.bodyInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitPost()

	case key.Matches(msg, m.keys.NextField):
		if m.titleInput.Focused() {
			m.titleInput.Blur()
			return m, m.bodyInput.Focus()
		}
		m.bodyInput.Blur()
		m.titleInput.Focus()
		return m, textinput.Blink
	}

	// Enter moves from title to body, matching form tab order
	if msg.Type == tea.KeyEnter && m.titleInput.Focused() {
		m.titleInput.Blur()
		return m, m.bodyInput.Focus()
	}

	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

// submitPost validates and creates the post.
func (m Model) submitPost() (tea.Model, tea.Cmd) {
	if m.board == nil {
		return m, nil
	}

	_, err := m.board.Create(m.titleInput.Value(), m.bodyInput.Value())
	switch {
	case errors.Is(err, model.ErrEmptyTitle), errors.Is(err, model.ErrEmptyBody):
		return m, m.push("Please fill in both the title and the body!", notify.LevelWarning)
	case err != nil:
		return m, m.push("Failed to save post: "+err.Error(), notify.LevelDanger)
	}

	// Clear the form and return to the list
	m.titleInput.SetValue("")
	m.bodyInput.SetValue("")
	m.bodyInput.Blur()
	m.titleInput.Focus()
	m.mode = ModeList
	m.cursor = 0
	m.refresh()
	return m, m.push("Post created successfully!", notify.LevelSuccess)
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.viewHeader()
	feed := renderFeed(m.feed.Items(), m.styles)

	var content string
	switch m.mode {
	case ModeList:
		content = m.viewport.View()
	case ModeConfirm:
		content = m.viewConfirm()
	case ModeCompose:
		content = m.viewCompose()
	case ModeHelp:
		content = m.viewHelp()
	}

	parts := []string{header}
	if feed != "" {
		parts = append(parts, feed)
	}
	parts = append(parts, content)
	if m.cfg.TUI.ShowHelp {
		parts = append(parts, renderKeybindBar(m.width, m.mode, m.styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("Post Board")
	toggle := m.styles.Toggle.Render(fmt.Sprintf("[%s %s]", m.active.Icon(), m.active))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + lipgloss.NewStyle().Width(gap).Render("") + toggle
}

func (m Model) viewConfirm() string {
	prompt := m.styles.Danger.Render("Delete this post? (y/n)")
	return prompt + "\n\n" + m.viewport.View()
}

func (m Model) viewCompose() string {
	label := m.styles.Muted

	s := label.Render("Title") + "\n"
	s += m.titleInput.View() + "\n\n"
	s += label.Render("Body") + "\n"
	s += m.bodyInput.View()
	return s
}

func (m Model) viewHelp() string {
	title := m.styles.Title.Render("Keyboard Shortcuts")
	section := m.styles.Muted
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	s := title + "\n\n"

	s += section.Render("Navigation") + "\n"
	s += keyStyle.Render("  j/k, ↑/↓") + "     Move up/down\n"
	s += keyStyle.Render("  g/G") + "          Go to top/bottom\n"
	s += keyStyle.Render("  pgup/pgdn") + "    Page up/down\n"
	s += "\n"

	s += section.Render("Actions") + "\n"
	s += keyStyle.Render("  n") + "            Write a new post\n"
	s += keyStyle.Render("  l, +") + "         Like the selected post\n"
	s += keyStyle.Render("  u, -") + "         Remove a like\n"
	s += keyStyle.Render("  d") + "            Delete (asks for confirmation)\n"
	s += keyStyle.Render("  x") + "            Dismiss the oldest message\n"
	s += keyStyle.Render("  t") + "            Toggle light/dark theme\n"
	s += "\n"

	s += section.Render("Compose") + "\n"
	s += keyStyle.Render("  ctrl+s") + "       Publish the post\n"
	s += keyStyle.Render("  alt+enter") + "    Publish the post\n"
	s += keyStyle.Render("  tab") + "          Switch between title and body\n"
	s += keyStyle.Render("  esc") + "          Cancel\n"
	s += "\n"

	s += section.Render("General") + "\n"
	s += keyStyle.Render("  ?") + "            Toggle this help\n"
	s += keyStyle.Render("  q") + "            Quit\n"

	return s
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config    *config.Config
	Board     *board.Board
	Themes    *theme.Manager
	BoardPath string // Path to watch for changes (empty = no watching)
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	b := opts.Board
	if b == nil {
		var err error
		b, err = board.New(nil)
		if err != nil {
			return err
		}
	}

	// Watch the board file so writes from other processes show up live
	var watcher *board.FileWatcher
	if opts.BoardPath != "" {
		var err error
		watcher, err = board.NewFileWatcher(b, opts.BoardPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create file watcher: %v\n", err)
		} else {
			if err := watcher.Start(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to start file watcher: %v\n", err)
			}
		}
	}

	m := New(opts.Config, b, opts.Themes)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	if watcher != nil {
		watcher.Stop()
	}

	return err
}
