package animations

// Animation walks a frame index from First to Last, advancing Step indices
// every SpeedInTps ticks.
type Animation struct {
	First            int
	Last             int
	Step             int // how many indices do we move per frame
	SpeedInTps       int // how many ticks before next frame
	frameCounter     int
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter++
	if a.frameCounter < a.SpeedInTps {
		return
	}
	a.frameCounter = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Last
		} else {
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Timer returns the ticks accumulated toward the next frame.
func (a *Animation) Timer() int {
	return a.frameCounter
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = 0
	a.Looped = false
}

// SetSpeed changes the cadence without restarting the sequence.
func (a *Animation) SetSpeed(ticks int) {
	a.SpeedInTps = ticks
}

func NewAnimation(first, last, step, speed int) *Animation {
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		frame:      first,
	}
}
