package flappy

// Ground is the cosmetic scrolling floor made of two world-wide tiles.
type Ground struct {
	tiles [2]float64
	width float64
}

// NewGround lays the tiles at 0 and W.
func NewGround(width float64) Ground {
	g := Ground{width: width}
	g.Reset()
	return g
}

// Reset lays the tiles at 0 and W.
func (g *Ground) Reset() {
	g.tiles = [2]float64{0, g.width}
}

// Advance scrolls both tiles and wraps the one that left the screen.
func (g *Ground) Advance(dt, speed float64) {
	g.tiles[0] += speed * dt
	g.tiles[1] += speed * dt

	if g.tiles[0] <= -g.width {
		g.tiles[0] = g.tiles[1] + g.width
	} else if g.tiles[1] <= -g.width {
		g.tiles[1] = g.tiles[0] + g.width
	}
}

// Offset returns the scroll position in [0, W) used to pattern the floor.
func (g Ground) Offset() float64 {
	x := g.tiles[0]
	if g.tiles[1] < x {
		x = g.tiles[1]
	}
	return -x
}

// Tiles returns the left edges of both tiles.
func (g Ground) Tiles() [2]float64 {
	return g.tiles
}
