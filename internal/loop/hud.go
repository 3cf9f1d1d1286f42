package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/springlaunch/internal/draw"
	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/physics"
)

const helpText = "←/→ angle  ↑/↓ tension  space fire  r reset  q quit"

// Efficiency colour tiers, in percent.
const (
	efficiencyGood = 75
	efficiencyFair = 50
)

// hud holds the overlay styles, bound to one output's renderer.
type hud struct {
	panel lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
	fair  lipgloss.Style
	poor  lipgloss.Style
	win   lipgloss.Style
	miss  lipgloss.Style
	hit   lipgloss.Style
	help  lipgloss.Style
}

func newHUD(r *lipgloss.Renderer) hud {
	banner := r.NewStyle().Bold(true).Padding(0, 2)
	return hud{
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		label: r.NewStyle().Foreground(lipgloss.Color("244")).Width(11),
		value: r.NewStyle().Foreground(lipgloss.Color("255")),
		good:  r.NewStyle().Foreground(lipgloss.Color("#00cc66")).Bold(true),
		fair:  r.NewStyle().Foreground(lipgloss.Color("#ffaa00")).Bold(true),
		poor:  r.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true),
		win:   banner.Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00cc66")),
		miss:  banner.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#cc2222")),
		hit:   banner.Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffcc00")),
		help:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// efficiency styles the hit ratio by tier. No launches yet reads as a dash.
func (h hud) efficiency(snap game.Snapshot) string {
	if snap.LaunchCount == 0 {
		return h.value.Render("-")
	}
	text := fmt.Sprintf("%d%%", snap.Efficiency)
	switch {
	case snap.Efficiency >= efficiencyGood:
		return h.good.Render(text)
	case snap.Efficiency >= efficiencyFair:
		return h.fair.Render(text)
	default:
		return h.poor.Render(text)
	}
}

func (h hud) row(label, value string) string {
	return h.label.Render(label) + value
}

// stats renders the readout panel.
func (h hud) stats(snap game.Snapshot) string {
	rows := []string{
		h.row("Tension", h.value.Render(fmt.Sprintf("%.0f", snap.Spring.Tension))),
		h.row("Angle", h.value.Render(fmt.Sprintf("%.0f°", snap.Spring.Angle))),
		h.row("Force", h.value.Render(fmt.Sprintf("%.2f", snap.Force))),
		h.row("Speed", h.value.Render(fmt.Sprintf("%.2f", snap.Speed))),
		h.row("Targets", h.value.Render(fmt.Sprintf("%d/%d", snap.TargetsHit, len(snap.Targets)))),
		h.row("Launches", h.value.Render(fmt.Sprintf("%d", snap.LaunchCount))),
		h.row("Efficiency", h.efficiency(snap)),
	}
	return h.panel.Render(strings.Join(rows, "\n"))
}

// banner returns the centred round message, if any.
func (h hud) banner(snap game.Snapshot) string {
	switch {
	case snap.Won:
		return h.win.Render(fmt.Sprintf("ALL TARGETS HIT in %d launches - r to play again", snap.LaunchCount))
	case snap.Miss:
		return h.miss.Render("MISS")
	case snap.State == game.StateResolved && snap.LastEvent == physics.EventHitTarget:
		return h.hit.Render("HIT!")
	}
	return ""
}

// draw writes the overlay after the canvas so it stays on top.
func (h hud) draw(cw *draw.ChunkWriter, snap game.Snapshot, cols, rows int, notice string) {
	cw.WriteAt(2, 1, h.stats(snap))

	if b := h.banner(snap); b != "" {
		cw.WriteAt(max(1, (cols-lipgloss.Width(b))/2+1), rows/3, b)
	}
	if notice != "" {
		n := h.miss.Render(notice)
		cw.WriteAt(max(1, (cols-lipgloss.Width(n))/2+1), rows/3+2, n)
	}

	cw.WriteAt(max(1, (cols-lipgloss.Width(helpText))/2+1), rows, h.help.Render(helpText))
}
