package systems

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/physics"
	"github.com/automoto/ascent/shared/leveldata"
	"github.com/automoto/ascent/systems/factory"
	"github.com/yohamta/donburi"
)

func twoRoomLevel(t *testing.T, cfg *config.Config) *level.Controller {
	t.Helper()
	row := strings.TrimSuffix(strings.Repeat("N/A ", 40), " ")
	floor := strings.TrimSuffix(strings.Repeat("GL0 ", 40), " ")
	room := []byte(strings.Repeat(row+"\n", 29) + floor + "\n")
	fsys := fstest.MapFS{
		leveldata.MatrixPath(1):      {Data: []byte("LVL1 LVL2\n")},
		leveldata.SubLevelPath(1, 1): {Data: room},
		leveldata.SubLevelPath(1, 2): {Data: room},
	}
	ctrl, err := level.Load(fsys, cfg, 1, 1, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ctrl
}

func TestOnlyActiveSubLevelIsSimulated(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	ctrl := twoRoomLevel(t, cfg)
	factory.CreateLevel(w, ctrl)

	active := factory.CreateNPC(w, cfg, 100, 100)
	ctrl.Grid().Attach(components.Object.Get(active).Object)
	parked := factory.CreateNPC(w, cfg, 100, 100)
	other, _ := ctrl.GridFor(2)
	other.Attach(components.Object.Get(parked).Object)

	k := physics.NewKinematics(cfg)
	r := physics.NewResolver(cfg, nil)
	for range 5 {
		UpdateKinematics(w, k)
		UpdateCollisions(w, r)
	}

	if y := components.Object.Get(active).Y; y <= 100 {
		t.Errorf("active NPC y = %v, want falling", y)
	}
	if y := components.Object.Get(parked).Y; y != 100 {
		t.Errorf("parked NPC y = %v, want frozen", y)
	}
}

func TestNoLevelNoSimulation(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	char := factory.CreateCharacter(w, cfg, 10, 10)
	components.Input.SetValue(char, components.InputData{MoveRight: true})

	UpdateKinematics(w, physics.NewKinematics(cfg))
	UpdateLevel(w)
	if x := components.Object.Get(char).X; x != 10 {
		t.Errorf("x = %v, want unchanged", x)
	}
	if _, ok := ActiveLevel(w); ok {
		t.Error("ActiveLevel found a level")
	}
}

func TestUpdateLevelTraverses(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	ctrl := twoRoomLevel(t, cfg)
	factory.CreateLevel(w, ctrl)
	char := factory.CreateCharacter(w, cfg, 1300, 500)
	ctrl.Grid().Attach(components.Object.Get(char).Object)

	UpdateLevel(w)

	if ctrl.SubLevel() != 2 {
		t.Fatalf("SubLevel = %d, want 2", ctrl.SubLevel())
	}
	if x := components.Object.Get(char).X; x != cfg.Level.EntryMargin {
		t.Errorf("x = %v, want %v", x, cfg.Level.EntryMargin)
	}
}

func TestReshapeKeepsGrid(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	ctrl := twoRoomLevel(t, cfg)
	char := factory.CreateCharacter(w, cfg, 50, 60)
	ctrl.Grid().Attach(components.Object.Get(char).Object)

	factory.Reshape(char, 32, 48)

	body := components.Object.Get(char)
	if body.W != 32 || body.H != 48 || body.X != 50 || body.Y != 60 {
		t.Errorf("body = (%v, %v, %v, %v)", body.X, body.Y, body.W, body.H)
	}
	if !ctrl.Grid().Holds(body.Object) {
		t.Error("reshaped body left its grid")
	}
	if body.Data != char {
		t.Error("body does not point back at its entry")
	}
}
