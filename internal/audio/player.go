package audio

// Player plays sound cues. Play must not block the caller.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue. Used when audio is muted or unavailable.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
