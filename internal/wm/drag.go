package wm

// DragController tracks a press-move-release drag on one window header.
// Each window owns its own controller, so offsets are never shared.
type DragController struct {
	dragging         bool
	offsetX, offsetY int
	x, y             int
}

// Press starts a drag, capturing the pointer's offset from the window position
func (d *DragController) Press(px, py, winX, winY int) {
	d.dragging = true
	d.offsetX = px - winX
	d.offsetY = py - winY
	d.x, d.y = winX, winY
}

// Move returns the new window position for the pointer while dragging
func (d *DragController) Move(px, py int) (x, y int, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	d.x = px - d.offsetX
	d.y = py - d.offsetY
	return d.x, d.y, true
}

// Release ends the drag
func (d *DragController) Release() {
	d.dragging = false
}

// Dragging reports whether a drag is in progress
func (d *DragController) Dragging() bool {
	return d.dragging
}

// Position returns the last computed position
func (d *DragController) Position() (x, y int) {
	return d.x, d.y
}
