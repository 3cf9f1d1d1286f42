// Package draw renders world-space shapes to a terminal using half-block cells.
package draw

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/springlaunch/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink selects the palette entry a pixel is rendered with. Zero is empty.
type Ink uint8

// Canvas is a drawing buffer with 2x vertical resolution: every terminal
// cell holds two stacked pixels. Shapes are given in world coordinates and
// scaled to the terminal size.
type Canvas struct {
	cols   int
	rows   int
	pixels []Ink // [y*cols + x], y in half-cell rows

	worldWidth  float64
	worldHeight float64
	scaleX      float64
	scaleY      float64

	palette []lipgloss.Style
	glyphs  map[glyphKey]string
}

type glyphKey struct {
	ink Ink
	ch  rune
}

// NewCanvas creates a canvas for a cols×rows terminal showing a
// worldWidth×worldHeight world. palette[i] styles Ink(i).
func NewCanvas(cols, rows int, worldWidth, worldHeight float64, palette []lipgloss.Style) *Canvas {
	c := &Canvas{
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
		palette:     palette,
		glyphs:      make(map[glyphKey]string),
	}
	c.Resize(cols, rows)
	return c
}

// Resize updates the terminal dimensions while keeping the world size.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.pixels = make([]Ink, cols*rows*2)
		c.cols = cols
		c.rows = rows
	}
	c.scaleX = float64(cols) / c.worldWidth
	c.scaleY = float64(rows*2) / c.worldHeight
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the ink of the pixel at pixel coordinates, or zero when out of
// bounds.
func (c *Canvas) At(px, py int) Ink {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*2 {
		return 0
	}
	return c.pixels[py*c.cols+px]
}

func (c *Canvas) set(px, py int, ink Ink) {
	if px >= 0 && px < c.cols && py >= 0 && py < c.rows*2 {
		c.pixels[py*c.cols+px] = ink
	}
}

func (c *Canvas) toPixel(p physics.Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Pixel converts a world point to pixel coordinates.
func (c *Canvas) Pixel(p physics.Point) (px, py int) {
	return c.toPixel(p)
}

// Cell converts a world point to a 1-based terminal position, for placing
// text next to drawn shapes.
func (c *Canvas) Cell(p physics.Point) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1, py/2 + 1
}

// Plot sets the pixel under a world point.
func (c *Canvas) Plot(p physics.Point, ink Ink) {
	px, py := c.toPixel(p)
	c.set(px, py, ink)
}

// Line draws a line between two world points using Bresenham's algorithm.
func (c *Canvas) Line(a, b physics.Point, ink Ink) {
	x1, y1 := c.toPixel(a)
	x2, y2 := c.toPixel(b)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.set(x1, y1, ink)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polyline joins consecutive points with lines.
func (c *Canvas) Polyline(points []physics.Point, ink Ink) {
	if len(points) == 1 {
		c.Plot(points[0], ink)
		return
	}
	for i := 1; i < len(points); i++ {
		c.Line(points[i-1], points[i], ink)
	}
}

// HLine draws a horizontal line across the whole canvas at world height y.
func (c *Canvas) HLine(y float64, ink Ink) {
	py := int(math.Round(y * c.scaleY))
	for px := 0; px < c.cols; px++ {
		c.set(px, py, ink)
	}
}

// Circle draws a circle of world radius r. Circles smaller than a pixel
// still mark their centre.
func (c *Canvas) Circle(center physics.Point, r float64, filled bool, ink Ink) {
	cx := center.X * c.scaleX
	cy := center.Y * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	c.Plot(center, ink)
	if rx < 0.5 && ry < 0.5 {
		return
	}

	if filled {
		for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
			for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
				nx := (float64(px) - cx) / rx
				ny := (float64(py) - cy) / ry
				if nx*nx+ny*ny <= 1 {
					c.set(px, py, ink)
				}
			}
		}
		return
	}

	steps := max(16, int(2*math.Pi*max(rx, ry)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(int(math.Round(cx+rx*math.Cos(a))), int(math.Round(cy+ry*math.Sin(a))), ink)
	}
}

// Render writes every non-empty cell to cw. When the two pixels of a cell
// carry different inks the upper one wins.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		top := c.pixels[row*2*c.cols:]
		bottom := c.pixels[(row*2+1)*c.cols:]

		for col := 0; col < c.cols; col++ {
			t, b := top[col], bottom[col]

			var (
				ch  rune
				ink Ink
			)
			switch {
			case t != 0 && b != 0:
				ch, ink = BlockFull, t
			case t != 0:
				ch, ink = BlockUpperHalf, t
			case b != 0:
				ch, ink = BlockLowerHalf, b
			default:
				continue
			}

			cw.MoveCursor(col+1, row+1)
			cw.WriteString(c.glyph(ink, ch))
		}
	}
}

// glyph returns the styled cell for ink, cached per ink and rune.
func (c *Canvas) glyph(ink Ink, ch rune) string {
	k := glyphKey{ink, ch}
	if s, ok := c.glyphs[k]; ok {
		return s
	}
	s := string(ch)
	if int(ink) < len(c.palette) {
		s = c.palette[ink].Render(s)
	}
	c.glyphs[k] = s
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
