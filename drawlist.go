package parallax

import "sync"

// drawListPool provides efficient reuse of DrawList buffers.
// The landing page rebuilds its whole draw list every frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 512),
			IdxBuffer: make([]uint16, 0, 768),
			CmdBuffer: make([]DrawCmd, 0, 8),
			clipStack: make([][4]float32, 0, 4),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates axis-aligned colored quads for a frame, batched by
// clip rectangle. Every backend renders from it.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
	finalized    bool
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.finalized = false
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends four corner vertices (clockwise from top-left) and the
// two triangles covering them.
func (dl *DrawList) addQuad(tl, tr, br, bl Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, tl, tr, br, bl)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddGradientRect draws a rectangle shading vertically from top to bottom.
func (dl *DrawList) AddGradientRect(x, y, w, h float32, top, bottom uint32) {
	if top&0xFF000000 == 0 && bottom&0xFF000000 == 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: top},
		Vertex{Pos: [2]float32{x + w, y}, Color: top},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: bottom},
		Vertex{Pos: [2]float32{x, y + h}, Color: bottom},
	)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	// Top and bottom edges
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	// Left and right edges
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added. Calling it again is a no-op.
func (dl *DrawList) Finalize() {
	if dl.finalized {
		return
	}
	dl.finalized = true

	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// Quad is one rectangle recovered from a finalized DrawList.
type Quad struct {
	Rect   Rect
	Top    uint32     // Color along the top edge
	Bottom uint32     // Color along the bottom edge
	Clip   [4]float32 // Clip rectangle (x1, y1, x2, y2)
}

// Quads calls fn for every quad in draw order. Backends without a GPU use it
// to rasterize. The DrawList is finalized first.
func (dl *DrawList) Quads(fn func(Quad)) {
	dl.Finalize()
	for _, cmd := range dl.CmdBuffer {
		for i := uint32(0); i+6 <= cmd.ElemCount; i += 6 {
			base := cmd.VertexOffset + uint32(dl.IdxBuffer[cmd.IndexOffset+i])
			tl := dl.VtxBuffer[base]
			br := dl.VtxBuffer[base+2]
			fn(Quad{
				Rect: Rect{
					X: tl.Pos[0],
					Y: tl.Pos[1],
					W: br.Pos[0] - tl.Pos[0],
					H: br.Pos[1] - tl.Pos[1],
				},
				Top:    tl.Color,
				Bottom: br.Color,
				Clip:   cmd.ClipRect,
			})
		}
	}
}
