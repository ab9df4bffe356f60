package starfall

import "github.com/vovakirdan/starfall/internal/core"

// MoveActors advances every live actor by dir*speed*dt.
func MoveActors(actors []Actor, speed, dt float64) {
	step := speed * dt
	for i := range actors {
		if actors[i].removed {
			continue
		}
		actors[i].Pos = actors[i].Pos.Add(actors[i].Dir.Scale(step))
	}
}

// PlayerDirection derives the player direction from held movement keys.
// Keys are checked left, right, up, down and the last held one wins, so
// two keys never blend into a diagonal. The result is unit length or zero.
func PlayerDirection(in core.InputFrame) core.Vec2 {
	var dir core.Vec2
	if in.IsHeld(core.ActionLeft) {
		dir = core.V(-2, 0)
	}
	if in.IsHeld(core.ActionRight) {
		dir = core.V(2, 0)
	}
	if in.IsHeld(core.ActionUp) {
		dir = core.V(0, 2)
	}
	if in.IsHeld(core.ActionDown) {
		dir = core.V(0, -2)
	}
	return dir.Normalize()
}

// MovePlayer advances the player along the held direction.
func MovePlayer(p *Actor, in core.InputFrame, speed, dt float64) {
	if p == nil {
		return
	}
	p.Pos = p.Pos.Add(PlayerDirection(in).Scale(speed * dt))
}
