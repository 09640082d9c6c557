//go:build ebiten

package ui

// DrawPause dims the whole view and centres title and hint.
func (c *Canvas) DrawPause(w, h int, title, hint string) {
	c.Fill(0, 0, w, h, screenDim)
	lh := c.LineHeight()
	c.DrawText(title, (w-c.TextWidth(title))/2, h/2-lh, debugText, true)
	c.DrawText(hint, (w-c.TextWidth(hint))/2, h/2+lh/2, promptColor, true)
}

// DrawChat draws the chat input box along the bottom edge.
func (c *Canvas) DrawChat(w, h int, input string) {
	lh := c.LineHeight()
	top := h - lh - 6
	c.Fill(2, top, w-2, h-2, chatBox)
	c.DrawText("> "+input+"_", 4, top+2, debugText, true)
}

// DrawDebug draws the host debug overlay lines in the top-left corner, each
// on its own backing strip.
func (c *Canvas) DrawDebug(lines []string) {
	lh := c.LineHeight()
	y := 2
	for _, line := range lines {
		c.Fill(1, y-1, 2+c.TextWidth(line)+1, y+lh, chatBox)
		c.DrawText(line, 2, y, debugText, false)
		y += lh
	}
}
