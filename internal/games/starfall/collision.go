package starfall

import (
	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
)

// Overlaps reports whether two circles of the given diameters intersect.
// Touching circles (distance equal to the radius sum) do not overlap.
func Overlaps(a, b core.Vec2, sizeA, sizeB float64) bool {
	return a.Distance(b) < sizeA/2+sizeB/2
}

// collectStars removes every star touching the player, scoring one point
// and queueing one collect cue per star.
func collectStars(ctx *tickContext, w *World, playerSize, starSize float64) {
	p := w.Player()
	if p == nil {
		return
	}
	for i := range w.stars {
		s := &w.stars[i]
		if s.removed || !Overlaps(p.Pos, s.Pos, playerSize, starSize) {
			continue
		}
		s.removed = true
		score := ctx.score.Increment()
		ctx.cue(audio.CueCollect)
		ctx.out.Push(core.Notice("Star collected", "score", score))
	}
}

// hitEnemies destroys the player on the first enemy it touches: one
// game-over event with the current score, one removal, one explosion cue.
// It reports whether the player was destroyed.
func hitEnemies(ctx *tickContext, w *World, playerSize, enemySize float64) bool {
	p := w.Player()
	if p == nil {
		return false
	}
	for i := range w.enemies {
		e := &w.enemies[i]
		if e.removed || !Overlaps(p.Pos, e.Pos, playerSize, enemySize) {
			continue
		}
		p.removed = true
		ctx.cue(audio.CueExplosion)
		ctx.out.Push(core.GameOverEvent(ctx.score.Value()))
		ctx.out.Push(core.Notice("Player destroyed", "score", ctx.score.Value(), "enemy", uint64(e.ID)))
		return true
	}
	return false
}
