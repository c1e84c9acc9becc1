// Package view renders the link grid and the editable settings list for the
// terminal. It only reads collection snapshots; the store drives it through
// change notifications.
package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

// DefaultColumns is the number of tiles per grid row.
const DefaultColumns = 4

const tileWidth = 12

var (
	iconStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Bold(true).
			Align(lipgloss.Center)

	nameStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center)

	tileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			MarginRight(1).
			Align(lipgloss.Center)

	indexStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	urlStyle   = lipgloss.NewStyle().Faint(true)
	headStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Initial returns the upper-cased first character of name, the text shown
// on a grid icon.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

// Grid renders links as rows of icon tiles, columns per row.
func Grid(links types.Collection, columns int) string {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if len(links) == 0 {
		return "No links yet. Add one with `dailies add <name> <url>`."
	}

	var rows []string
	for start := 0; start < len(links); start += columns {
		end := min(start+columns, len(links))
		tiles := make([]string, 0, end-start)
		for _, l := range links[start:end] {
			tiles = append(tiles, tile(l))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func tile(l types.Link) string {
	icon := iconStyle.Render(Initial(l.Name))
	name := nameStyle.Render(truncate(l.Name, tileWidth))
	return tileStyle.Render(lipgloss.JoinVertical(lipgloss.Center, icon, name))
}

// Settings renders the editable list: position, name, url and id of each
// link. Positions are the indices accepted by `dailies move`.
func Settings(links types.Collection) string {
	var b strings.Builder
	b.WriteString(headStyle.Render("Links"))
	b.WriteString("\n")
	if len(links) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	for i, l := range links {
		fmt.Fprintf(&b, "%s  %s  %s  [%s]",
			indexStyle.Render(fmt.Sprintf("%d", i)),
			labelStyle.Render(l.Name),
			urlStyle.Render(l.URL),
			l.ID,
		)
		if i < len(links)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// Mode selects which view a Renderer draws.
type Mode int

const (
	ModeGrid Mode = iota
	ModeSettings
)

// Renderer writes a view to an io.Writer. Its Render method matches the
// store listener signature so it can be subscribed directly.
type Renderer struct {
	w       io.Writer
	mode    Mode
	columns int
}

// NewRenderer returns a renderer drawing mode to w.
func NewRenderer(w io.Writer, mode Mode, columns int) *Renderer {
	return &Renderer{w: w, mode: mode, columns: columns}
}

// Render draws links.
func (r *Renderer) Render(links types.Collection) {
	switch r.mode {
	case ModeSettings:
		fmt.Fprintln(r.w, Settings(links))
	default:
		fmt.Fprintln(r.w, Grid(links, r.columns))
	}
}
