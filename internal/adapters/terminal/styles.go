package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

var (
	ColorUntracked = lipgloss.Color("#334155")
	ColorClean     = lipgloss.Color("#10b981")
	ColorLow       = lipgloss.Color("#fecaca")
	ColorMild      = lipgloss.Color("#fca5a5")
	ColorModerate  = lipgloss.Color("#ef4444")
	ColorHigh      = lipgloss.Color("#b91c1c")
	ColorSevere    = lipgloss.Color("#7f1d1d")
	ColorMuted     = lipgloss.Color("#94a3b8")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	monthStyle = lipgloss.NewStyle().MarginRight(3)
)

// Palette returns the color of a bucket. Placeholders have none.
func Palette(b heatmap.Bucket) (lipgloss.Color, bool) {
	switch b {
	case heatmap.BucketUntracked:
		return ColorUntracked, true
	case heatmap.BucketClean:
		return ColorClean, true
	case heatmap.BucketLow:
		return ColorLow, true
	case heatmap.BucketMild:
		return ColorMild, true
	case heatmap.BucketModerate:
		return ColorModerate, true
	case heatmap.BucketHigh:
		return ColorHigh, true
	case heatmap.BucketSevere:
		return ColorSevere, true
	default:
		return "", false
	}
}
