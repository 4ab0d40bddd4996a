package animations

import (
	"fmt"

	"github.com/automoto/ascent/config"
)

// Frame is an opaque drawable handle owned by the provider.
type Frame any

// Sequence is the ordered run of frames for one state and facing.
type Sequence struct {
	Name   string
	Frames []Frame
	Speed  int // default ticks per frame
}

// Provider supplies frame sequences. The simulation never decodes images; it
// only swaps sequences on state change and advances an index.
type Provider interface {
	Sequence(key string, state config.StateID, dir config.Direction) (Sequence, bool)
}

// TableProvider serves sequences from config.CharacterAnimations. Frames are
// sprite-sheet indices.
type TableProvider struct {
	defs map[string]map[config.StateID]config.AnimationDef
}

func NewTableProvider(defs map[string]map[config.StateID]config.AnimationDef) *TableProvider {
	return &TableProvider{defs: defs}
}

func (p *TableProvider) Sequence(key string, state config.StateID, dir config.Direction) (Sequence, bool) {
	def, ok := p.defs[key][state]
	if !ok {
		return Sequence{}, false
	}

	step := def.Step
	if step <= 0 {
		step = 1
	}
	frames := make([]Frame, 0, def.Frames())
	for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex += step {
		frames = append(frames, sheetIndex)
	}
	return Sequence{
		Name:   fmt.Sprintf("%s/%s/%s", key, state, dir),
		Frames: frames,
		Speed:  def.Speed,
	}, true
}

// NewSequenceAnimation returns an Animation that loops over seq at speed.
func NewSequenceAnimation(seq Sequence, speed int) *Animation {
	last := len(seq.Frames) - 1
	if last < 0 {
		last = 0
	}
	return NewAnimation(0, last, 1, speed)
}
