package component

// Input is the held state of the controls for one tick. It is sampled once
// per tick by the host and never changes while the tick runs.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// Direction resolves held keys into a movement delta. Each axis gets ±speed;
// diagonals are not normalised.
func (in Input) Direction(speed float64) (dx, dy float64) {
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	return dx, dy
}
