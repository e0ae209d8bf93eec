package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vitor14i/postboard/internal/model"
	"github.com/vitor14i/postboard/internal/notify"
	"github.com/vitor14i/postboard/internal/theme"
)

// emptyMessage is shown when the board has no posts.
const emptyMessage = "No posts yet. Be the first to share!"

// sanitize renders user-supplied text as literal text. Escape bytes
// and other control characters are stripped so post content can never
// inject terminal sequences; newlines and tabs survive.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cardOptions carries per-render settings for a post card.
type cardOptions struct {
	dateFormat    string
	relativeDates bool
	width         int
}

// renderCard builds the visual card for one post. The like control is
// rendered highlighted while flashed (the brief like-animation state).
func renderCard(p model.Post, selected, flashed bool, st theme.Styles, opts cardOptions) string {
	date := p.FormattedDate(opts.dateFormat)
	if opts.relativeDates {
		date = p.RelativeTime()
	}

	likeStyle := st.Like
	if flashed {
		likeStyle = st.LikeActive
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(sanitize(p.Title)))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(date))
	b.WriteString("\n\n")
	b.WriteString(st.Body.Render(sanitize(p.Body)))
	b.WriteString("\n\n")
	b.WriteString(likeStyle.Render(fmt.Sprintf("♥ %d", p.Likes)))
	b.WriteString(st.Muted.Render("    l like · u unlike · d delete"))

	card := st.Card
	if selected {
		card = st.SelectedCard
	}
	if opts.width > 4 {
		card = card.Width(opts.width - 2)
	}
	return card.Render(b.String())
}

// renderBoard rebuilds the whole list, newest first. There is no
// partial update path: every call produces the complete view from the
// collection. The returned offsets give the first line of each card,
// for scrolling the cursor into view.
func renderBoard(posts []model.Post, cursor int, flashedID string, st theme.Styles, opts cardOptions) (string, []int) {
	if len(posts) == 0 {
		return st.Empty.Render(emptyMessage), nil
	}

	offsets := make([]int, len(posts))
	var b strings.Builder
	line := 0
	for i, p := range posts {
		offsets[i] = line
		card := renderCard(p, i == cursor, p.ID == flashedID, st, opts)
		if i > 0 {
			b.WriteString("\n")
			line++
		}
		b.WriteString(card)
		line += lipgloss.Height(card)
	}
	return b.String(), offsets
}

// renderFeed renders the stacked notifications, oldest first.
func renderFeed(items []notify.Notification, st theme.Styles) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		style := st.Severity(n.Level.String())
		b.WriteString(style.Render("▸ " + n.Text))
	}
	return b.String()
}

// keybind represents a single keybind with priority for the status bar.
type keybind struct {
	key  string
	desc string
}

// renderKeybindBar builds a keybind bar that fits within the given
// width. mode determines which keybinds are shown.
func renderKeybindBar(width int, mode Mode, st theme.Styles) string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var binds []keybind
	switch mode {
	case ModeList:
		binds = []keybind{
			{"q", "quit"},
			{"n", "new post"},
			{"l", "like"},
			{"u", "unlike"},
			{"d", "delete"},
			{"x", "dismiss"},
			{"t", "theme"},
			{"?", "help"},
		}
	case ModeCompose:
		binds = []keybind{
			{"ctrl+s", "publish"},
			{"tab", "switch field"},
			{"esc", "cancel"},
		}
	case ModeConfirm:
		binds = []keybind{
			{"y", "delete"},
			{"n/esc", "cancel"},
		}
	case ModeHelp:
		binds = []keybind{
			{"?", "close"},
			{"esc", "back"},
		}
	}

	const separator = "  "
	var parts []string
	used := 0
	for i, b := range binds {
		plain := b.key + " " + b.desc
		cost := len(plain)
		if i > 0 {
			cost += len(separator)
		}
		if width > 0 && used+cost > width {
			break
		}
		used += cost
		parts = append(parts, keyStyle.Render(b.key)+" "+b.desc)
	}

	return st.Muted.Render(strings.Join(parts, separator))
}
