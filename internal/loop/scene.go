package loop

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/springlaunch/internal/draw"
	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/physics"
)

const (
	inkNone draw.Ink = iota
	inkFloor
	inkSpring
	inkAnchor
	inkProjectile
	inkTrail
	inkHit
	inkTargets // target i is drawn with inkTargets+i
)

const defaultTargetColor = "#ffffff"

// palette builds the canvas styles. Each target keeps its configured colour.
func palette(r *lipgloss.Renderer, targets []game.TargetSpec) []lipgloss.Style {
	styles := []lipgloss.Style{
		inkNone:       r.NewStyle(),
		inkFloor:      r.NewStyle().Foreground(lipgloss.Color("240")),
		inkSpring:     r.NewStyle().Foreground(lipgloss.Color("250")),
		inkAnchor:     r.NewStyle().Foreground(lipgloss.Color("244")),
		inkProjectile: r.NewStyle().Foreground(lipgloss.Color("#ffcc00")),
		inkTrail:      r.NewStyle().Foreground(lipgloss.Color("#886600")),
		inkHit:        r.NewStyle().Foreground(lipgloss.Color("238")),
	}
	for _, t := range targets {
		color := t.Color
		if color == "" {
			color = defaultTargetColor
		}
		styles = append(styles, r.NewStyle().Foreground(lipgloss.Color(color)))
	}
	return styles
}

// drawScene draws the world for one snapshot onto a cleared canvas.
func drawScene(c *draw.Canvas, snap game.Snapshot) {
	c.Clear()

	c.HLine(snap.World.FloorY, inkFloor)

	for _, p := range snap.Trail {
		c.Plot(p, inkTrail)
	}

	for i, t := range snap.Targets {
		center := physics.Point{X: t.X, Y: t.Y}
		if t.Hit {
			c.Circle(center, t.Radius, false, inkHit)
			continue
		}
		c.Circle(center, t.Radius, true, inkTargets+draw.Ink(i))
	}

	c.Polyline(snap.Spring.Coil, inkSpring)
	c.Circle(snap.Spring.Anchor, 4, true, inkAnchor)

	p := snap.Projectile
	c.Circle(physics.Point{X: p.X, Y: p.Y}, p.Radius, true, inkProjectile)
}
