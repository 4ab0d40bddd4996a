package character

import (
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"go.uber.org/zap"
)

// ErrUnknownBuff is returned when a buff name is not in the table.
var ErrUnknownBuff = errors.New("unknown buff")

// BuffRunner starts, advances and expires a character's buffs. A buff
// modifies pool maxima while a phase is active and reverts the change when
// the phase ends.
type BuffRunner struct {
	table *config.BuffTable
	log   *zap.Logger
}

func NewBuffRunner(table *config.BuffTable, log *zap.Logger) *BuffRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &BuffRunner{table: table, log: log}
}

// Grant adds name to the character's buff list. It is started on the next
// Sync.
func (r *BuffRunner) Grant(buffs *components.BuffsData, name string) error {
	if _, ok := r.table.Get(name); !ok {
		return fmt.Errorf("grant %q: %w", name, ErrUnknownBuff)
	}
	if !slices.Contains(buffs.Names, name) {
		buffs.Names = append(buffs.Names, name)
	}
	return nil
}

// Sync starts a buff for every listed name that is not running yet. Names
// missing from the table are dropped with a warning.
func (r *BuffRunner) Sync(buffs *components.BuffsData, traits *components.TraitsData) {
	kept := buffs.Names[:0]
	for _, name := range buffs.Names {
		def, ok := r.table.Get(name)
		if !ok {
			r.log.Warn("unknown buff dropped", zap.String("buff", name))
			continue
		}
		kept = append(kept, name)
		if buffs.Has(name) {
			continue
		}
		b := &components.Buff{Def: def, Phase: components.BuffActive, Remaining: def.Buff.Ticks}
		applyDeltas(traits, def.Buff.Deltas, 1)
		buffs.Active = append(buffs.Active, b)
		r.log.Debug("buff started", zap.String("buff", name), zap.Int("ticks", b.Remaining))
	}
	buffs.Names = kept
}

// Resume rebuilds a running buff from saved progress. Pool maxima are
// restored separately, so no deltas are applied.
func (r *BuffRunner) Resume(buffs *components.BuffsData, name string, phase components.BuffPhase, remaining int) error {
	def, ok := r.table.Get(name)
	if !ok {
		return fmt.Errorf("resume %q: %w", name, ErrUnknownBuff)
	}
	if phase == components.BuffExpired || buffs.Has(name) {
		return nil
	}
	if !slices.Contains(buffs.Names, name) {
		buffs.Names = append(buffs.Names, name)
	}
	buffs.Active = append(buffs.Active, &components.Buff{Def: def, Phase: phase, Remaining: remaining})
	return nil
}

// Update advances every running buff by one tick and removes the ones whose
// debuff phase has ended.
func (r *BuffRunner) Update(buffs *components.BuffsData, traits *components.TraitsData) {
	active := buffs.Active[:0]
	for _, b := range buffs.Active {
		b.Remaining--
		advanceImage(b)
		for b.Remaining <= 0 && b.Phase != components.BuffExpired {
			r.nextPhase(b, traits)
		}
		if b.Phase == components.BuffExpired {
			buffs.Names = slices.DeleteFunc(buffs.Names, func(n string) bool { return n == b.Def.Name })
			r.log.Debug("buff expired", zap.String("buff", b.Def.Name))
			continue
		}
		active = append(active, b)
	}
	clear(buffs.Active[len(active):])
	buffs.Active = active
}

func (r *BuffRunner) nextPhase(b *components.Buff, traits *components.TraitsData) {
	switch b.Phase {
	case components.BuffActive:
		applyDeltas(traits, b.Def.Buff.Deltas, -1)
		b.Phase = components.DebuffActive
		b.Remaining = b.Def.Debuff.Ticks
		applyDeltas(traits, b.Def.Debuff.Deltas, 1)
	case components.DebuffActive:
		applyDeltas(traits, b.Def.Debuff.Deltas, -1)
		b.Phase = components.BuffExpired
		b.Remaining = 0
	}
	b.Image = 0
	b.ImageTimer = 0
	r.log.Debug("buff phase", zap.String("buff", b.Def.Name), zap.Stringer("phase", b.Phase))
}

func advanceImage(b *components.Buff) {
	if b.Def.Images <= 0 {
		return
	}
	b.ImageTimer++
	if b.ImageTimer >= b.Def.ImageTrigger {
		b.Image = (b.Image + 1) % b.Def.Images
		b.ImageTimer = 0
	}
}

func applyDeltas(traits *components.TraitsData, deltas map[config.Attribute]int, sign int) {
	for attr, delta := range deltas {
		if pool := traits.Pool(attr); pool != nil {
			pool.Modify(sign * delta)
		}
	}
}
