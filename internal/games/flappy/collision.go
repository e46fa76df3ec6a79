package flappy

// HitsGround reports whether the body's bottom edge has reached the ground.
func HitsGround(b Body, groundTopY float64) bool {
	return b.Y <= groundTopY
}

// Collides reports whether the body touches the ground or any obstacle.
func Collides(b Body, s *Stream, groundTopY float64) bool {
	return HitsGround(b, groundTopY) || s.CollidesWith(b.Bounds())
}
