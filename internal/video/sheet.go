package video

// Object tile ids in the sprite sheet. Sprites are 8bpp, so one 8x8 tile
// spans two ids and a 16x16 sprite spans eight.
const (
	ObjCoin      uint16 = 2
	ObjPlayer    uint16 = 10
	ObjBrick     uint16 = ObjPlayer + PlayerFrames*8
	ObjUsedBlock uint16 = ObjBrick + 8
	ObjPoints    uint16 = ObjUsedBlock + 8
)

// PlayerFrames is the number of 16x16 player animation frames.
const PlayerFrames = 8

// Score popup digits, as offsets from ObjPoints in 8x8 tiles.
const (
	PointsTen uint16 = iota
	PointsTwenty
	PointsForty
	PointsFifty
	PointsEighty
	PointsZero
	PointsOneUpLeft
	PointsOneUpRight
)

// PlayerFrame returns the tile id of player animation frame i.
func PlayerFrame(i int) uint16 {
	return ObjPlayer + uint16(i)*8
}

// PointsTile returns the tile id of a score popup digit.
func PointsTile(digit uint16) uint16 {
	return ObjPoints + digit*2
}
