package starfall

import (
	"math/rand"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
)

// Bounds returns the allowed centre range for an actor of the given size:
// [size/2, dim - size/2] on each axis.
func Bounds(area core.Vec2, size float64) (min, max core.Vec2) {
	half := size / 2
	return core.V(half, half), core.V(area.X-half, area.Y-half)
}

// Confine clamps pos into [min, max] on each axis independently. When dir
// is not nil, the component of every axis that left bounds is negated.
// It reports whether any axis was out of bounds.
func Confine(pos, dir *core.Vec2, min, max core.Vec2) bool {
	changed := false

	if pos.X < min.X || pos.X > max.X {
		pos.X = core.ClampF(pos.X, min.X, max.X)
		if dir != nil {
			dir.X = -dir.X
		}
		changed = true
	}
	if pos.Y < min.Y || pos.Y > max.Y {
		pos.Y = core.ClampF(pos.Y, min.Y, max.Y)
		if dir != nil {
			dir.Y = -dir.Y
		}
		changed = true
	}

	return changed
}

// bounceCue picks the cue for a boundary hit. Player and enemy flip a coin
// between both pluck cues; stars always get the low one unless random is set.
func bounceCue(kind Kind, rng *rand.Rand, starRandom bool) audio.Cue {
	roll := rng.Float64()
	if kind == KindStar && !starRandom {
		return audio.CueBounceLow
	}
	if roll > 0.5 {
		return audio.CueBounceLow
	}
	return audio.CueBounceHigh
}

// confineArena confines every live actor of an arena and emits one bounce
// cue per actor that hit a wall.
func confineArena(ctx *tickContext, actors []Actor, size float64) {
	min, max := Bounds(ctx.area, size)
	for i := range actors {
		a := &actors[i]
		if a.removed {
			continue
		}
		if Confine(&a.Pos, &a.Dir, min, max) {
			ctx.cue(bounceCue(a.Kind, ctx.rng, ctx.starRandomCue))
		}
	}
}

// confinePlayer clamps the player without any reflection.
func confinePlayer(ctx *tickContext, p *Actor, size float64) {
	if p == nil {
		return
	}
	min, max := Bounds(ctx.area, size)
	if Confine(&p.Pos, nil, min, max) {
		ctx.cue(bounceCue(KindPlayer, ctx.rng, false))
	}
}
