package core

// Default cell size in world pixels. A 500x600 px world maps to 50x30 cells.
const (
	CellWidth  = 10
	CellHeight = 20
)

// Canvas draws pixel-space textures and text onto a character Screen.
// Textures are stretched to the destination rectangle by nearest-neighbour
// sampling of their glyph art.
type Canvas struct {
	screen *Screen
	cellW  int
	cellH  int
}

// NewCanvas creates a canvas over the given screen. Non-positive cell sizes
// fall back to CellWidth and CellHeight.
func NewCanvas(s *Screen, cellW, cellH int) *Canvas {
	if cellW <= 0 {
		cellW = CellWidth
	}
	if cellH <= 0 {
		cellH = CellHeight
	}
	return &Canvas{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// CellRect converts a pixel rectangle into the cell rectangle it covers.
func (c *Canvas) CellRect(dst Rect) Rect {
	x0 := FloorDiv(dst.X, c.cellW)
	y0 := FloorDiv(dst.Y, c.cellH)
	return Rect{
		X: x0,
		Y: y0,
		W: max(1, CeilDiv(dst.W, c.cellW)),
		H: max(1, CeilDiv(dst.H, c.cellH)),
	}
}

// DrawTexture draws a sprite stretched over dst. A tint other than
// ColorDefault replaces the sprite color.
func (c *Canvas) DrawTexture(sp *Sprite, dst Rect, tint Color) {
	if sp == nil || len(sp.Art) == 0 {
		return
	}
	color := sp.Color
	if tint != ColorDefault {
		color = tint
	}

	cells := c.CellRect(dst)
	for row := 0; row < cells.H; row++ {
		art := []rune(sp.Art[row*len(sp.Art)/cells.H])
		if len(art) == 0 {
			continue
		}
		for col := 0; col < cells.W; col++ {
			r := art[col*len(art)/cells.W]
			if r == ' ' {
				continue
			}
			c.screen.SetCell(cells.X+col, cells.Y+row, Cell{Rune: r, Color: color})
		}
	}
}

// DrawString writes text with its top-left corner at pixel (x, y).
func (c *Canvas) DrawString(f *Font, text string, x, y int, tint Color) {
	color := tint
	if color == ColorDefault && f != nil {
		color = f.Color
	}
	c.screen.DrawText(FloorDiv(x, c.cellW), FloorDiv(y, c.cellH), text, color)
}
