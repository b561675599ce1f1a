package player

import (
	"github.com/vovakirdan/tui-platformer/internal/effects"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/stream"
)

// pointsDelay holds the score popup back until the coin has risen.
const pointsDelay = 16

// hitBlock handles a head impact on 8 px row. The cells above the left and
// right edges of the sprite are inspected in that order and the first block
// found reacts.
func (p *Player) hitBlock(row int) {
	p.bumps++
	if p.deps.Tiles == nil {
		return
	}

	tileRow := row &^ 1
	first, last := span(p.x)
	cols := [2]int{first >> 1, last >> 1}
	n := 2
	if cols[0] == cols[1] {
		n = 1
	}

	for _, col := range cols[:n] {
		tile, ok := stream.TileAt(p.deps.Tiles, tileRow, col)
		if !ok {
			continue
		}

		switch tile {
		case level.Brick:
			p.deps.Effects.Add(effects.TileBounce(tileRow, col, effects.BounceBrick), 0)
		case level.QuestionUnused:
			p.deps.Effects.Add(effects.TileBounce(tileRow, col, effects.BounceUsedBlock), 0)
			p.deps.Effects.Add(effects.CoinUp(tileRow-2, col), 0)
			p.deps.Effects.Add(effects.Points(tileRow-2, col, effects.Score200), pointsDelay)
			p.deps.Score.AddToScore(effects.Score200.Points())
			p.deps.Score.AddCoin()
		case level.QuestionUsed:
		default:
			continue
		}
		p.log.Debug("block hit", "tile", tile.Name(), "row", tileRow, "col", col)
		return
	}
}
