package effects

import (
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// Kind tags the variants of Effect.
type Kind uint8

const (
	KindTileBounce Kind = iota + 1
	KindCoinUp
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindTileBounce:
		return "tile_bounce"
	case KindCoinUp:
		return "coin_up"
	case KindPoints:
		return "points"
	default:
		return "unknown"
	}
}

// BounceTile selects the block a bounce leaves behind.
type BounceTile uint8

const (
	BounceBrick BounceTile = iota
	BounceUsedBlock
)

func (b BounceTile) restingTile() level.Tile {
	if b == BounceUsedBlock {
		return level.QuestionUsed
	}
	return level.Brick
}

func (b BounceTile) spriteTile() uint16 {
	if b == BounceUsedBlock {
		return video.ObjUsedBlock
	}
	return video.ObjBrick
}

// ScoreAmount is the value shown by a score popup.
type ScoreAmount uint8

const (
	Score100 ScoreAmount = iota
	Score200
	Score400
	Score500
	Score800
	ScoreOneUp
)

// Points returns the score value of the amount. A one-up is worth no points.
func (a ScoreAmount) Points() uint32 {
	switch a {
	case Score100:
		return 100
	case Score200:
		return 200
	case Score400:
		return 400
	case Score500:
		return 500
	case Score800:
		return 800
	default:
		return 0
	}
}

func (a ScoreAmount) tiles() (left, right uint16) {
	switch a {
	case Score100:
		return video.PointsTen, video.PointsZero
	case Score200:
		return video.PointsTwenty, video.PointsZero
	case Score400:
		return video.PointsForty, video.PointsZero
	case Score500:
		return video.PointsFifty, video.PointsZero
	case Score800:
		return video.PointsEighty, video.PointsZero
	default:
		return video.PointsOneUpLeft, video.PointsOneUpRight
	}
}

// Effect is a time-boxed animation anchored to a tile grid position: Row is
// an 8 px map row and Col a world column.
type Effect struct {
	Kind   Kind
	Row    int
	Col    int
	Bounce BounceTile
	Amount ScoreAmount
}

// TileBounce hops the block at (row, col) and leaves tile behind.
func TileBounce(row, col int, tile BounceTile) Effect {
	return Effect{Kind: KindTileBounce, Row: row, Col: col, Bounce: tile}
}

// CoinUp pops a coin upward from (row, col).
func CoinUp(row, col int) Effect {
	return Effect{Kind: KindCoinUp, Row: row, Col: col}
}

// Points floats a score popup upward from (row, col).
func Points(row, col int, amount ScoreAmount) Effect {
	return Effect{Kind: KindPoints, Row: row, Col: col, Amount: amount}
}

// samePlace reports whether two effects would animate the same thing.
func (e Effect) samePlace(o Effect) bool {
	return e.Kind == o.Kind && e.Row == o.Row && e.Col == o.Col
}

// Durations in ticks.
const (
	bounceTicks = 8
	riseTicks   = 16
)

// Duration returns the number of ticks the effect stays active.
func (e Effect) Duration() uint32 {
	if e.Kind == KindTileBounce {
		return bounceTicks
	}
	return riseTicks
}

// BounceOffset is the vertical hop of a tile bounce after elapsed ticks.
func BounceOffset(elapsed uint32) int {
	d := int(elapsed) - bounceTicks/2
	if d < 0 {
		d = -d
	}
	return bounceTicks/2 - d
}

// RiseOffset is the vertical lift of a coin or score popup.
func RiseOffset(elapsed uint32) int {
	return int(elapsed) * 2
}
