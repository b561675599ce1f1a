package platformer

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// Each 8x8 cell is drawn as two terminal characters so the picture keeps
// roughly the right aspect ratio.
const cellW = 2

// Playfield size in terminal cells, plus one row for the HUD.
const (
	playW      = video.ScreenCols * cellW
	playH      = video.ScreenRows
	MinScreenW = playW
	MinScreenH = playH + 1
)

type glyph struct {
	r rune
	c core.Color
}

// tileGlyphs gives each named tile a glyph per cell: top-left, top-right,
// bottom-left, bottom-right.
var tileGlyphs = map[level.Tile][4]glyph{
	level.Brick:             fill('▒', core.ColorOrange),
	level.Rock:              fill('▓', core.ColorYellow),
	level.QuestionUnused:    fill('?', core.ColorBrightYellow),
	level.QuestionUsed:      fill('▪', core.ColorGray),
	level.PipeTopLeft:       {{'▄', core.ColorBrightGreen}, {'▄', core.ColorBrightGreen}, {'█', core.ColorBrightGreen}, {'█', core.ColorBrightGreen}},
	level.PipeTopRight:      {{'▄', core.ColorBrightGreen}, {'▄', core.ColorBrightGreen}, {'█', core.ColorBrightGreen}, {'█', core.ColorBrightGreen}},
	level.PipeBodyLeft:      {{' ', 0}, {'█', core.ColorGreen}, {' ', 0}, {'█', core.ColorGreen}},
	level.PipeBodyRight:     {{'█', core.ColorGreen}, {' ', 0}, {'█', core.ColorGreen}, {' ', 0}},
	level.BushLeft:          fill('♣', core.ColorBrightGreen),
	level.BushMiddle:        fill('♣', core.ColorBrightGreen),
	level.BushRight:         fill('♣', core.ColorBrightGreen),
	level.MountainTop:       {{' ', 0}, {' ', 0}, {'▲', core.ColorGreen}, {'▲', core.ColorGreen}},
	level.MountainSlopeUp:   {{' ', 0}, {'/', core.ColorGreen}, {'/', core.ColorGreen}, {'░', core.ColorGreen}},
	level.MountainButtons:   fill('·', core.ColorGreen),
	level.MountainEmpty:     fill('░', core.ColorGreen),
	level.MountainSlopeDown: {{'\\', core.ColorGreen}, {' ', 0}, {'░', core.ColorGreen}, {'\\', core.ColorGreen}},
}

func fill(r rune, c core.Color) [4]glyph {
	g := glyph{r, c}
	return [4]glyph{g, g, g, g}
}

// cellGlyph resolves an 8x8 cell index to its glyph.
func cellGlyph(cell uint8) (glyph, bool) {
	t, ok := level.CellOwner(cell)
	if !ok {
		return glyph{}, false
	}
	quads, ok := tileGlyphs[t]
	if !ok {
		return glyph{}, false
	}
	switch cell {
	case t.TopLeft():
		return quads[0], true
	case t.TopRight():
		return quads[1], true
	case t.BottomLeft():
		return quads[2], true
	default:
		return quads[3], true
	}
}

// Render draws the visible part of the video memory into dst.
func (g *Game) Render(dst *core.Screen) {
	g.ready()
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	ox := (dst.Width() - playW) / 2
	oy := (dst.Height() - MinScreenH) / 2

	field := core.NewRect(ox, oy+1, playW, playH)
	dst.DrawTextColored(ox, oy, g.mem.TextRow(0), core.ColorBrightWhite)
	g.renderTiles(dst, field.X, field.Y)
	g.renderSprites(dst, field)
	g.renderOverlay(dst, field)
}

// renderTiles draws the tile map under the committed scroll registers.
func (g *Game) renderTiles(dst *core.Screen, ox, oy int) {
	colStart := max(g.mem.ScrollX.Int()>>3, 0)
	rowStart := max(g.mem.ScrollY.Int()>>3, 0)

	for cy := range video.ScreenRows {
		row := rowStart + cy
		if row >= video.MapRows {
			break
		}
		for cx := range video.ScreenCols {
			half := colStart + cx
			e := g.mem.Tiles[row][(half>>1)&(video.MapCols-1)]
			cell := e.Low
			if half&1 == 1 {
				cell = e.High
			}
			if cell == 0 {
				continue
			}
			gl, ok := cellGlyph(cell)
			if !ok || gl.r == ' ' {
				continue
			}
			x := ox + cx*cellW
			dst.SetColored(x, oy+cy, gl.r, gl.c)
			dst.SetColored(x+1, oy+cy, gl.r, gl.c)
		}
	}
}

// renderSprites draws every visible sprite clipped to the playfield. Lower
// slots are drawn last so the player stays on top.
func (g *Game) renderSprites(dst *core.Screen, field core.Rect) {
	for slot := len(g.mem.Sprites) - 1; slot >= 0; slot-- {
		a := g.mem.Sprites[slot]
		if !a.Visible {
			continue
		}
		art, color := spriteArt(a)
		box := core.NewRect(field.X+(a.X>>3)*cellW, field.Y+a.Y>>3, artWidth(art), len(art))
		if !field.Intersects(box) {
			continue
		}
		for dy, line := range art {
			for dx, r := range []rune(line) {
				x, y := box.X+dx, box.Y+dy
				if r == ' ' || !field.Contains(x, y) {
					continue
				}
				dst.SetColored(x, y, r, color)
			}
		}
	}
}

func artWidth(art []string) int {
	w := 0
	for _, line := range art {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

var playerArt = [...][2]string{
	player.Standing:  {" o> ", " /\\ "},
	player.Walking1:  {" o> ", " /| "},
	player.Walking2:  {" o> ", " |\\ "},
	player.Walking3:  {" o> ", " /\\ "},
	player.Stopping:  {"<o> ", " >\\ "},
	player.Jumping:   {"\\o>/", " /\\ "},
	player.Die:       {"\\x_x", " /\\ "},
	player.SlidePole: {" o> ", " || "},
}

var pointsText = [...]string{
	video.PointsTen:        "10",
	video.PointsTwenty:     "20",
	video.PointsForty:      "40",
	video.PointsFifty:      "50",
	video.PointsEighty:     "80",
	video.PointsZero:       "0 ",
	video.PointsOneUpLeft:  "1U",
	video.PointsOneUpRight: "P ",
}

// spriteArt returns the text rows and colour for a sprite.
func spriteArt(a video.SpriteAttr) ([]string, core.Color) {
	id := a.TileID
	switch {
	case id >= video.ObjPlayer && id < video.ObjPlayer+video.PlayerFrames*8:
		rows := playerArt[(id-video.ObjPlayer)/8]
		if a.HFlip {
			return []string{mirror(rows[0]), mirror(rows[1])}, core.ColorBrightRed
		}
		return rows[:], core.ColorBrightRed
	case id == video.ObjCoin:
		return []string{" () ", " () "}, core.ColorBrightYellow
	case id == video.ObjBrick:
		return []string{"▒▒▒▒", "▒▒▒▒"}, core.ColorOrange
	case id == video.ObjUsedBlock:
		return []string{"▪▪▪▪", "▪▪▪▪"}, core.ColorGray
	case id >= video.ObjPoints && int(id-video.ObjPoints)/2 < len(pointsText):
		return []string{pointsText[(id-video.ObjPoints)/2]}, core.ColorBrightWhite
	}
	if a.Size == 1 {
		return []string{"????", "????"}, core.ColorMagenta
	}
	return []string{"??"}, core.ColorMagenta
}

var mirrored = map[rune]rune{'/': '\\', '\\': '/', '<': '>', '>': '<', '(': ')', ')': '('}

func mirror(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	for i, r := range rs {
		if m, ok := mirrored[r]; ok {
			rs[i] = m
		}
	}
	return string(rs)
}

// renderOverlay draws the pause and clear panels over the playfield. An
// empty line becomes a divider.
func (g *Game) renderOverlay(dst *core.Screen, field core.Rect) {
	var lines []string
	switch {
	case g.cleared:
		lines = []string{"COURSE CLEAR!", "", fmt.Sprintf("Score: %d", g.hud.Score()), "Press Q to quit"}
	case g.paused:
		lines = []string{"PAUSED"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w = core.Clamp(w+4, 16, field.W)
	h := len(lines) + 2
	cx, cy := field.Center()
	panel := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel)
	for i, l := range lines {
		y := panel.Y + 1 + i
		if l == "" {
			dst.Set(panel.X, y, '├')
			dst.DrawHLine(panel.X+1, y, panel.W-2, '─')
			dst.Set(panel.Right()-1, y, '┤')
			continue
		}
		dst.DrawText(panel.X+(panel.W-len(l))/2, y, l)
	}
}
