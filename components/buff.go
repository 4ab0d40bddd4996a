package components

import (
	"github.com/automoto/ascent/config"
	"github.com/yohamta/donburi"
)

// BuffPhase is the lifecycle position of a buff.
type BuffPhase int

const (
	BuffActive BuffPhase = iota
	DebuffActive
	BuffExpired
)

func (p BuffPhase) String() string {
	switch p {
	case BuffActive:
		return "buff"
	case DebuffActive:
		return "debuff"
	default:
		return "expired"
	}
}

// Buff is one running instance of a table entry.
type Buff struct {
	Def        *config.BuffDef
	Phase      BuffPhase
	Remaining  int // ticks left in Phase
	Image      int
	ImageTimer int
}

// BuffsData tracks the names a character is entitled to and the buffs
// currently running for them.
type BuffsData struct {
	Names  []string
	Active []*Buff
}

var Buffs = donburi.NewComponentType[BuffsData]()

// Has reports whether name is running.
func (b *BuffsData) Has(name string) bool {
	for _, buff := range b.Active {
		if buff.Def.Name == name {
			return true
		}
	}
	return false
}
