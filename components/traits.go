package components

import (
	"github.com/automoto/ascent/config"
	"github.com/yohamta/donburi"
)

// Pool is a bounded character resource.
type Pool struct {
	Current       int
	Max           int
	RegenAmount   int
	RegenInterval int
	DrainAmount   int
	DrainInterval int
	Modifier      int // sum of buff deltas currently applied to Max
	base          int // Max before modifiers, valid while Modifier != 0
}

func NewPool(c config.PoolConfig) Pool {
	return Pool{
		Current:       c.Current,
		Max:           c.Max,
		RegenAmount:   c.RegenAmount,
		RegenInterval: c.RegenInterval,
		DrainAmount:   c.DrainAmount,
		DrainInterval: c.DrainInterval,
	}
}

// Add changes Current by n, clamped to [0, Max].
func (p *Pool) Add(n int) {
	p.Current = min(max(p.Current+n, 0), p.Max)
}

func (p *Pool) Full() bool {
	return p.Current >= p.Max
}

// Modify shifts the modifier by delta. Max becomes base plus modifier,
// floored at zero, and Current is clamped to it. A clamped Max does not
// lose the base, so reverting a delta always restores the prior bound.
func (p *Pool) Modify(delta int) {
	p.base = p.BaseMax()
	p.Modifier += delta
	p.Max = max(p.base+p.Modifier, 0)
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// BaseMax is Max without buff modifiers.
func (p *Pool) BaseMax() int {
	if p.Modifier == 0 {
		return p.Max
	}
	return p.base
}

// Restore sets the base maximum and the running modifier, as read back from
// a save.
func (p *Pool) Restore(current, base, modifier int) {
	p.base = max(base, 0)
	p.Modifier = modifier
	p.Max = max(p.base+modifier, 0)
	p.Current = min(max(current, 0), p.Max)
}

// TraitsData holds a character's name and resource pools. Only endurance
// takes part in physics.
type TraitsData struct {
	Name      string
	Endurance Pool
	Influence Pool
	Resolve   Pool
	Strength  Pool
}

var Traits = donburi.NewComponentType[TraitsData]()

// Pool returns the pool for attr, or nil for an unknown attribute.
func (t *TraitsData) Pool(attr config.Attribute) *Pool {
	switch attr {
	case config.AttrEndurance:
		return &t.Endurance
	case config.AttrInfluence:
		return &t.Influence
	case config.AttrResolve:
		return &t.Resolve
	case config.AttrStrength:
		return &t.Strength
	}
	return nil
}
