package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

const (
	GlyphDay  = "■"
	GlyphNote = "◆"
	blank     = "  "

	monthsPerRow = 4
	weekHeader   = "M T W T F S S"
)

// RenderHeatmap draws the twelve months as week-aligned grids, four months
// per row, followed by the streaks and a legend.
func RenderHeatmap(d heatmap.Dashboard) string {
	var rows []string
	for i := 0; i < len(d.Months); i += monthsPerRow {
		end := min(i+monthsPerRow, len(d.Months))
		blocks := make([]string, 0, end-i)
		for _, m := range d.Months[i:end] {
			blocks = append(blocks, monthStyle.Render(RenderMonth(m)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(rows, "\n\n"),
		"",
		RenderStreaks(d.Streaks),
		RenderLegend(),
	)
}

// RenderMonth draws one month: title, weekday header, then one line per
// week starting on Monday.
func RenderMonth(m heatmap.Month) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.Name, m.Year)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(weekHeader))

	for i, c := range m.Days {
		if i%7 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCell(c))
	}
	return b.String()
}

func renderCell(c heatmap.Cell) string {
	color, ok := Palette(c.Bucket)
	if !ok {
		return blank
	}

	glyph := GlyphDay
	if c.HasNote {
		glyph = GlyphNote
	}

	style := lipgloss.NewStyle().Foreground(color)
	if c.IsToday {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(glyph) + " "
}

func RenderStreaks(s heatmap.Streaks) string {
	return fmt.Sprintf("%s %s   %s %s",
		mutedStyle.Render("Current streak:"), titleStyle.Render(days(s.Current)),
		mutedStyle.Render("Longest:"), titleStyle.Render(days(s.Longest)),
	)
}

func RenderLegend() string {
	item := func(color lipgloss.Color, glyph, label string) string {
		return lipgloss.NewStyle().Foreground(color).Render(glyph) + " " + label
	}
	return strings.Join([]string{
		item(ColorClean, GlyphDay, "Clean"),
		item(ColorModerate, GlyphDay, "Bad"),
		item(ColorUntracked, GlyphDay, "Untracked"),
		item(ColorMuted, GlyphNote, "Has note"),
	}, "   ")
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
