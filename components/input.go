package components

import "github.com/yohamta/donburi"

// InputData is the per-tick intent supplied by the input layer. The engine
// never reads devices itself.
type InputData struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	Run       bool
	Jump      bool
	HoldWall  bool
}

var Input = donburi.NewComponentType[InputData]()
