package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/parallax"
)

// Host owns a tcell screen. Events are read on a background goroutine and
// applied to the input state on the caller's goroutine by Poll, so the scene
// and its controller stay single-threaded.
type Host struct {
	screen tcell.Screen
	canvas *Canvas
	input  *parallax.InputState
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	quit   bool
}

// NewHost initializes a terminal screen with mouse reporting.
func NewHost() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return newHost(screen)
}

func newHost(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := &Host{
		screen: screen,
		canvas: NewCanvas(cols, rows),
		input:  parallax.NewInputState(),
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go h.pollEvents()
	return h, nil
}

func (h *Host) pollEvents() {
	defer close(h.events)
	h.forward(h.screen.PollEvent)
}

// forward queues events from next until it returns nil or the host is
// closed. A full queue blocks it only until Close.
func (h *Host) forward(next func() tcell.Event) {
	for {
		ev := next()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// Poll starts a new input frame and applies every queued event to it.
func (h *Host) Poll() *parallax.InputState {
	h.input.Reset()
	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.quit = true
				return h.input
			}
			h.HandleEvent(ev)
		default:
			return h.input
		}
	}
}

// HandleEvent applies one tcell event to the input state.
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			h.quit = true
			return
		}
		if k := tcellKeyToKey(ev); k != parallax.KeyNone {
			// Terminals report presses only.
			h.input.SetKey(k, true)
			h.input.SetKey(k, false)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.input.SetMousePos((float32(x)+0.5)*h.canvas.cellW, (float32(y)+0.5)*h.canvas.cellH)

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			h.input.AddMouseWheel(0, 1)
		}
		if buttons&tcell.WheelDown != 0 {
			h.input.AddMouseWheel(0, -1)
		}
		h.input.SetMouseButton(parallax.MouseButtonLeft, buttons&tcell.Button1 != 0)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.canvas.Resize(cols, rows)
		h.screen.Sync()
	}
}

// Input returns the current input state.
func (h *Host) Input() *parallax.InputState { return h.input }

// Canvas returns the raster target.
func (h *Host) Canvas() *Canvas { return h.canvas }

// Display returns the display size in display units.
func (h *Host) Display() parallax.Vec2 { return h.canvas.Display() }

// ShouldQuit reports whether the user asked to exit.
func (h *Host) ShouldQuit() bool { return h.quit }

// Render rasterizes dl and shows it.
func (h *Host) Render(dl *parallax.DrawList) error {
	clear(h.canvas.cells)
	h.canvas.Draw(dl)

	cols, rows := h.canvas.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := h.canvas.At(col, row)
			bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			h.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
	h.screen.Show()
	return nil
}

// Close restores the terminal and stops the event goroutine. It is safe to
// call more than once.
func (h *Host) Close() {
	h.once.Do(func() {
		close(h.done)
		h.screen.Fini()
	})
}

func tcellKeyToKey(ev *tcell.EventKey) parallax.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return parallax.KeyUp
	case tcell.KeyDown:
		return parallax.KeyDown
	case tcell.KeyPgUp:
		return parallax.KeyPageUp
	case tcell.KeyPgDn:
		return parallax.KeyPageDown
	case tcell.KeyHome:
		return parallax.KeyHome
	case tcell.KeyEnd:
		return parallax.KeyEnd
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'j':
			return parallax.KeySpace
		case 'k':
			return parallax.KeyUp
		case 'g':
			return parallax.KeyHome
		case 'G':
			return parallax.KeyEnd
		}
	}
	return parallax.KeyNone
}
