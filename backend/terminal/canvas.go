// Package terminal provides a tcell backend for the landing page. Draw lists
// are rasterized onto a character grid, one background color per cell.
package terminal

import (
	"github.com/go-theft-auto/parallax"
)

// Default cell size in display units. Terminal cells are roughly twice as
// tall as they are wide.
const (
	DefaultCellWidth  float32 = 8
	DefaultCellHeight float32 = 16
)

// RGB is an opaque cell color.
type RGB struct {
	R, G, B uint8
}

// Canvas is a cell grid a DrawList is rasterized onto.
type Canvas struct {
	cols, rows   int
	cellW, cellH float32
	cells        []RGB
}

// NewCanvas creates a canvas of cols×rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{cellW: DefaultCellWidth, cellH: DefaultCellHeight}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size. Contents are cleared.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]RGB, n)
	}
	c.cells = c.cells[:n]
	clear(c.cells)
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Display returns the display size in display units.
func (c *Canvas) Display() parallax.Vec2 {
	return parallax.Vec2{X: float32(c.cols) * c.cellW, Y: float32(c.rows) * c.cellH}
}

// At returns the color of a cell. Out of range cells are black.
func (c *Canvas) At(col, row int) RGB {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return RGB{}
	}
	return c.cells[row*c.cols+col]
}

// Draw rasterizes dl over the current contents. Each cell takes the color at
// its center; gradients interpolate vertically and alpha blends over what is
// already there.
func (c *Canvas) Draw(dl *parallax.DrawList) {
	dl.Quads(func(q parallax.Quad) {
		x1 := max(q.Rect.X, q.Clip[0])
		y1 := max(q.Rect.Y, q.Clip[1])
		x2 := min(q.Rect.X+q.Rect.W, q.Clip[2])
		y2 := min(q.Rect.Y+q.Rect.H, q.Clip[3])
		if x2 <= x1 || y2 <= y1 {
			return
		}

		col1 := max(int(x1/c.cellW), 0)
		row1 := max(int(y1/c.cellH), 0)
		for row := row1; row < c.rows; row++ {
			cy := (float32(row) + 0.5) * c.cellH
			if cy >= y2 {
				break
			}
			if cy < y1 {
				continue
			}
			color := q.Top
			if q.Top != q.Bottom && q.Rect.H > 0 {
				color = parallax.LerpColor(q.Top, q.Bottom, (cy-q.Rect.Y)/q.Rect.H)
			}
			for col := col1; col < c.cols; col++ {
				cx := (float32(col) + 0.5) * c.cellW
				if cx >= x2 {
					break
				}
				if cx < x1 {
					continue
				}
				i := row*c.cols + col
				c.cells[i] = blend(c.cells[i], color)
			}
		}
	})
}

func blend(dst RGB, src uint32) RGB {
	r, g, b, a := parallax.UnpackRGBA(src)
	switch a {
	case 0:
		return dst
	case 255:
		return RGB{r, g, b}
	}
	alpha := float32(a) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float32(d)*(1-alpha) + float32(s)*alpha + 0.5)
	}
	return RGB{mix(dst.R, r), mix(dst.G, g), mix(dst.B, b)}
}
