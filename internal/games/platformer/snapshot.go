package platformer

// Snapshot contains the observable session state for debugging and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint32
	Paused  bool
	Cleared bool
	Deaths  int

	Score uint32
	Coins uint8
	Time  uint16

	// Player state in raw fixed-point units
	PlayerX    int32
	PlayerY    int32
	PlayerVelX int32
	PlayerVelY int32
	PlayerAnim string
	Grounded   bool

	// Camera position in raw fixed-point units
	CameraX int32
	CameraY int32

	// Level stream progress
	StreamCol     int
	StreamItem    int
	StreamLive    int
	RenderedCols  int
	EffectPending int
	EffectActive  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	g.ready()
	st := g.player.State()
	col, item := g.renderer.Cursor()
	return Snapshot{
		Tick:    g.tick,
		Paused:  g.paused,
		Cleared: g.cleared,
		Deaths:  g.deaths,

		Score: g.hud.Score(),
		Coins: g.hud.Coins(),
		Time:  g.hud.Time(),

		PlayerX:    st.X.Bits(),
		PlayerY:    st.Y.Bits(),
		PlayerVelX: st.VelX.Bits(),
		PlayerVelY: st.VelY.Bits(),
		PlayerAnim: st.Anim.String(),
		Grounded:   st.Grounded,

		CameraX: g.cam.X.Bits(),
		CameraY: g.cam.Y.Bits(),

		StreamCol:     col,
		StreamItem:    item,
		StreamLive:    g.renderer.Live(),
		RenderedCols:  g.renderer.Rendered(),
		EffectPending: g.effects.PendingCount(),
		EffectActive:  g.effects.ActiveCount(),
	}
}
