package magi

import (
	"fmt"

	"github.com/vovakirdan/flappy-magi/internal/core"
)

// HUD text and placement in world pixels.
const (
	fontName = "DefaultFont"

	scoreX = 15
	scoreY = 15

	gameOverText = "Dead, Press R to restart."
	gameOverX    = 115
	gameOverY    = 290

	pausedText = "Paused, Press P to resume."
	pausedX    = 110
	pausedY    = 290
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	c := core.NewCanvas(dst, core.CellWidth, core.CellHeight)

	g.background.Draw(c, g.tex)
	g.wave.Draw(c, g.tex)
	g.magi.Draw(c, g.tex)

	font, err := g.tex.Font(fontName)
	if err != nil {
		return
	}
	c.DrawString(font, fmt.Sprintf("Score: %02d", g.wave.Score()), scoreX, scoreY, core.ColorWhite)

	switch {
	case g.state == StateGameOver:
		c.DrawString(font, gameOverText, gameOverX, gameOverY, core.ColorRed)
	case g.paused:
		c.DrawString(font, pausedText, pausedX, pausedY, core.ColorYellow)
	}
}

// Draw draws every sky tile with its ground strip below.
func (b *Background) Draw(c *core.Canvas, tex Textures) {
	ground := lookup(tex, GroundTextureKey)
	for i, x := range b.xs {
		sky := core.NewRect(int(x), 0, b.tileW, SkyHeight)
		c.DrawTexture(lookup(tex, BackgroundTextureKey(b.phases[i])), sky, core.ColorDefault)
		c.DrawTexture(ground, core.NewRect(int(x), SkyHeight, b.tileW, GroundHeight), core.ColorDefault)
	}
}

// Draw draws every pipe.
func (w *PipeWave) Draw(c *core.Canvas, tex Textures) {
	w.Each(func(p Pipe) {
		c.DrawTexture(lookup(tex, PipeTextureKey(p.Role)), p.Rect(), core.ColorDefault)
	})
}

// Draw draws the Magi with the texture for its facing and wing frame.
func (m *Magi) Draw(c *core.Canvas, tex Textures) {
	c.DrawTexture(lookup(tex, m.TextureKey()), m.Rect(), core.ColorDefault)
}

// lookup returns nil for a missing texture; a nil sprite draws nothing.
func lookup(tex Textures, name string) *core.Sprite {
	sp, err := tex.Texture(name)
	if err != nil {
		return nil
	}
	return sp
}
