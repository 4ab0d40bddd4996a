package persistence

import (
	"fmt"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// GDataStore keeps snapshots in the per-user application data directory.
type GDataStore struct {
	m   *gdata.Manager
	log *zap.Logger
}

func OpenGData(appName string, log *zap.Logger) (*GDataStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save store %q: %w", appName, err)
	}
	return &GDataStore{m: m, log: log}, nil
}

func itemKey(slot string) string {
	return "character_" + slot
}

func (s *GDataStore) Save(slot string, save *CharacterSave) error {
	data, err := encode(save)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(itemKey(slot), data); err != nil {
		return fmt.Errorf("save %q: %w", slot, err)
	}
	s.log.Debug("character saved", zap.String("slot", slot), zap.Int("bytes", len(data)))
	return nil
}

func (s *GDataStore) Load(slot string) (*CharacterSave, error) {
	data, err := s.m.LoadItem(itemKey(slot))
	if err != nil {
		s.log.Debug("no saved character", zap.String("slot", slot), zap.Error(err))
		return nil, fmt.Errorf("load %q: %w", slot, ErrNoSave)
	}
	return decode(slot, data)
}

// Delete clears the slot by writing an empty item.
func (s *GDataStore) Delete(slot string) error {
	if err := s.m.SaveItem(itemKey(slot), nil); err != nil {
		return fmt.Errorf("delete %q: %w", slot, err)
	}
	return nil
}
