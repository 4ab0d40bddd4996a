package engine

import (
	"errors"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/persistence"
	"go.uber.org/zap"
)

// Snapshot captures the character's pools, buffs and position.
func (e *Engine) Snapshot() (*persistence.CharacterSave, error) {
	ctrl, ok := e.Level()
	if !ok {
		return nil, ErrNoLevel
	}
	char, ok := e.Character()
	if !ok {
		return nil, ErrNoCharacter
	}

	traits := components.Traits.Get(char)
	body := components.Object.Get(char)
	save := &persistence.CharacterSave{
		Name:      traits.Name,
		Level:     ctrl.Level(),
		SubLevel:  ctrl.SubLevel(),
		X:         body.X,
		Y:         body.Y,
		Direction: int(components.Actor.Get(char).Direction),
		Endurance: savePool(traits.Endurance),
		Influence: savePool(traits.Influence),
		Resolve:   savePool(traits.Resolve),
		Strength:  savePool(traits.Strength),
	}
	for _, b := range components.Buffs.Get(char).Active {
		save.Buffs = append(save.Buffs, persistence.BuffSave{
			Name:      b.Def.Name,
			Phase:     int(b.Phase),
			Remaining: b.Remaining,
		})
	}
	return save, nil
}

// ApplySave loads the saved level and puts the character back as it was.
// Buffs missing from the current table are skipped.
func (e *Engine) ApplySave(save *persistence.CharacterSave) error {
	if err := e.LoadLevel(save.Level, save.SubLevel); err != nil {
		return err
	}
	char, _ := e.Character()

	traits := components.Traits.Get(char)
	c := e.cfg.Character
	traits.Name = save.Name
	traits.Endurance = restorePool(c.Endurance, save.Endurance)
	traits.Influence = restorePool(c.Influence, save.Influence)
	traits.Resolve = restorePool(c.Resolve, save.Resolve)
	traits.Strength = restorePool(c.Strength, save.Strength)

	buffs := components.Buffs.Get(char)
	*buffs = components.BuffsData{}
	for _, b := range save.Buffs {
		err := e.buffs.Resume(buffs, b.Name, components.BuffPhase(b.Phase), b.Remaining)
		if err != nil {
			e.log.Warn("saved buff skipped", zap.String("buff", b.Name), zap.Error(err))
		}
	}

	actor := components.Actor.Get(char)
	actor.Direction = config.FacingRight
	if config.Direction(save.Direction) == config.FacingLeft {
		actor.Direction = config.FacingLeft
	}
	e.place(char, save.X, save.Y)

	e.log.Info("save applied",
		zap.String("name", save.Name),
		zap.Int("level", save.Level),
		zap.Int("sub_level", save.SubLevel),
		zap.Int("buffs", len(buffs.Active)))
	return nil
}

func savePool(p components.Pool) persistence.PoolSave {
	return persistence.PoolSave{Current: p.Current, Max: p.Max, Base: p.BaseMax(), Modifier: p.Modifier}
}

func restorePool(c config.PoolConfig, s persistence.PoolSave) components.Pool {
	p := components.NewPool(c)
	base := s.Base
	if base == 0 {
		base = s.Max - s.Modifier
	}
	p.Restore(s.Current, base, s.Modifier)
	return p
}

// SaveTo writes a snapshot into slot.
func (e *Engine) SaveTo(store persistence.Store, slot string) error {
	save, err := e.Snapshot()
	if err != nil {
		return err
	}
	return store.Save(slot, save)
}

// LoadFrom restores slot. It reports false when the slot is empty.
func (e *Engine) LoadFrom(store persistence.Store, slot string) (bool, error) {
	save, err := store.Load(slot)
	if errors.Is(err, persistence.ErrNoSave) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, e.ApplySave(save)
}
