package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
)

const (
	starOn  = "★"
	starOff = "☆"
	trash   = "[x]"
)

// Text renders one terminal line per story.
type Text struct {
	title lipgloss.Style
	star  lipgloss.Style
	trash lipgloss.Style
	muted lipgloss.Style
	label lipgloss.Style
	empty lipgloss.Style
}

// NewText returns a renderer whose color profile is detected from w.
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	return &Text{
		title: r.NewStyle().Bold(true),
		star:  r.NewStyle().Foreground(lipgloss.Color("#f5a623")),
		trash: r.NewStyle().Foreground(lipgloss.Color("#d0021b")),
		muted: r.NewStyle().Faint(true),
		label: r.NewStyle().Bold(true).Width(18),
		empty: r.NewStyle().Italic(true),
	}
}

func (t *Text) Story(v StoryView) string {
	s := v.Story

	mark := starOff
	if v.Favorite {
		mark = starOn
	}

	parts := []string{t.star.Render(mark)}
	if v.Own {
		parts = append(parts, t.trash.Render(trash))
	}
	parts = append(parts,
		t.title.Render(Sanitize(s.Title)),
		t.muted.Render("("+Sanitize(HostName(s.URL))+")"),
		"by "+Sanitize(s.Author),
		t.muted.Render("posted by "+Sanitize(s.Username)),
	)
	return strings.Join(parts, " ")
}

func (t *Text) Empty(msg string) string {
	return t.empty.Render(Sanitize(msg))
}

func (t *Text) Profile(u *models.User) string {
	if u == nil {
		return ""
	}
	rows := []string{
		t.title.Render("User Profile Info"),
		t.label.Render("Name:") + Sanitize(u.Name),
		t.label.Render("Username:") + Sanitize(u.Username),
		t.label.Render("Account Created:") + accountDate(u.CreatedAt),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
