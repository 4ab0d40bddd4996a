package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed int // ticks per frame; 0 or 1 advances every tick
}

// Frames is the number of frames in the sequence.
func (d AnimationDef) Frames() int {
	if d.Step <= 0 {
		return 1
	}
	return (d.Last-d.First)/d.Step + 1
}

// CharacterAnimations maps an actor key ("character", "npc") to its sequences.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"character": {
		Idle:                    {First: 0, Last: 3, Step: 1, Speed: 8},
		Walking:                 {First: 0, Last: 7, Step: 1, Speed: 3},
		Running:                 {First: 0, Last: 7, Step: 1, Speed: 2},
		Climbing:                {First: 0, Last: 3, Step: 1, Speed: 5},
		Falling:                 {First: 0, Last: 1, Step: 1, Speed: 0},
		Crying:                  {First: 0, Last: 13, Step: 1, Speed: 3},
		InteractingWithExit:     {First: 0, Last: 7, Step: 1, Speed: 3},
		InteractingWithFeedback: {First: 0, Last: 7, Step: 1, Speed: 3},
		InteractingWithHelp:     {First: 0, Last: 7, Step: 1, Speed: 3},
		InteractingWithLoad:     {First: 0, Last: 7, Step: 1, Speed: 3},
		InteractingWithOptions:  {First: 0, Last: 7, Step: 1, Speed: 3},
	},
	"npc": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 8},
		Running: {First: 0, Last: 5, Step: 1, Speed: 3},
	},
}
