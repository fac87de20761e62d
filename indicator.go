package parallax

// DotIndicator is the vertical column of section dots on the right edge of
// the page. Clicking a dot navigates to its section.
type DotIndicator struct {
	Count int
	Style Style

	hovered int
	rects   []Rect
}

// NewDotIndicator creates an indicator for count sections.
func NewDotIndicator(count int, style Style) *DotIndicator {
	return &DotIndicator{Count: count, Style: style, hovered: -1}
}

// Layout computes the dot rectangles for a display, vertically centered.
func (d *DotIndicator) Layout(display Vec2) []Rect {
	d.rects = d.rects[:0]
	size, gap := d.Style.DotSize, d.Style.DotGap
	total := float32(d.Count)*size + float32(max(d.Count-1, 0))*gap
	x := display.X - d.Style.DotMargin - size
	y := (display.Y - total) / 2
	for i := 0; i < d.Count; i++ {
		d.rects = append(d.rects, Rect{X: x, Y: y, W: size, H: size})
		y += size + gap
	}
	return d.rects
}

// HitTest returns the dot under p, padding each dot by half the gap so small
// dots stay easy to hit.
func (d *DotIndicator) HitTest(p Vec2, display Vec2) (int, bool) {
	pad := d.Style.DotGap / 2
	for i, r := range d.Layout(display) {
		hit := Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
		if hit.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Update tracks hover and returns the clicked section, if any.
func (d *DotIndicator) Update(input *InputState, display Vec2) (int, bool) {
	i, ok := d.HitTest(input.MousePos(), display)
	d.hovered = -1
	if ok {
		d.hovered = i
	}
	if ok && input.MouseClicked(MouseButtonLeft) {
		return i, true
	}
	return -1, false
}

// Hovered returns the hovered dot, or -1.
func (d *DotIndicator) Hovered() int { return d.hovered }

// Draw draws the dots, highlighting current.
func (d *DotIndicator) Draw(dl *DrawList, display Vec2, current int) {
	for i, r := range d.Layout(display) {
		color := d.Style.DotColor
		switch {
		case i == current:
			color = d.Style.DotActiveColor
			r = r.Scaled(1.3)
		case i == d.hovered:
			color = d.Style.DotHoveredColor
		}
		dl.AddRect(r.X, r.Y, r.W, r.H, color)
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, d.Style.DotBorderColor, 1)
	}
}
