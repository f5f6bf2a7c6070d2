// Package format provides display helpers shared by the menu screens:
// viewer-count abbreviation, string sanitizing, elapsed live time and
// ANSI styling of menu lines.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Separator splits the label and value columns on the info screen.
const Separator = "─"

// LiveIcon marks a live channel in menu lines.
const LiveIcon = "●"

var (
	liveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	viewersStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	gameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
)

// Number abbreviates a count for menu lines (1200 -> "1.2K").
func Number(n int) string {
	switch {
	case n >= 1_000_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000_000), ".0") + "M"
	case n >= 1_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000), ".0") + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Sanitize strips characters that break single-line menu entries.
func Sanitize(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Elapsed renders the time since t as a compact duration ("2h 13m").
func Elapsed(t time.Time) string {
	d := time.Since(t).Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Row is one "label: value" line on the item info screen.
type Row struct {
	Label string
	Value string
}

// RenderRow lays out a row with the label column padded to a fixed width.
func RenderRow(r Row) string {
	return fmt.Sprintf("%-18s%s\t%s", r.Label, Separator, r.Value)
}

// SplitRow recovers the value column from a rendered row line.
func SplitRow(line string) string {
	_, value, found := strings.Cut(line, Separator)
	if !found {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(value)
}

// Styled applies fn only when ansi is requested.
func styled(ansi bool, st lipgloss.Style, s string) string {
	if !ansi {
		return s
	}
	return st.Render(s)
}

// Name styles a channel or item name.
func Name(s string, ansi bool) string { return styled(ansi, nameStyle, s) }

// Live styles the live icon.
func Live(ansi bool) string { return styled(ansi, liveStyle, LiveIcon) }

// Offline styles the offline marker.
func Offline(ansi bool) string { return styled(ansi, offlineStyle, LiveIcon+" Offline") }

// Viewers styles an abbreviated viewer count.
func Viewers(n int, ansi bool) string { return styled(ansi, viewersStyle, Number(n)) }

// Title styles a stream or video title.
func Title(s string, ansi bool) string { return styled(ansi, titleStyle, s) }

// Game styles a game or category name.
func Game(s string, ansi bool) string { return styled(ansi, gameStyle, s) }
