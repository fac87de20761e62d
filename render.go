package parallax

import "fmt"

// Renderer draws a finalized DrawList. backend/opengl and backend/terminal
// provide implementations.
type Renderer interface {
	Render(dl *DrawList) error
}

// Render draws the scene into a pooled DrawList and hands it to r.
func (s *Scene) Render(r Renderer) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	s.Draw(dl)
	dl.Finalize()
	if err := r.Render(dl); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
