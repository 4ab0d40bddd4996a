package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of engine tunables. A Config is never mutated after
// it has been handed to the engine; reloading builds a new one.
type Config struct {
	Game      GameConfig      `toml:"game"`
	Physics   PhysicsConfig   `toml:"physics"`
	Character CharacterConfig `toml:"character"`
	NPC       NPCConfig       `toml:"npc"`
	Level     LevelConfig     `toml:"level"`
	Logging   LoggingConfig   `toml:"logging"`
}

// GameConfig describes the viewport and tick clock.
type GameConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	TPS      int `toml:"tps"`
	TileSize int `toml:"tile_size"`
}

// PhysicsConfig contains the kinematic constants shared by every actor.
type PhysicsConfig struct {
	Gravity       float64 `toml:"gravity"`
	Friction      float64 `toml:"friction"`
	AirResistance float64 `toml:"air_resistance"`
	Acceleration  float64 `toml:"acceleration"`
	JumpStrength  float64 `toml:"jump_strength"`

	WalkCap  float64 `toml:"walk_cap"`
	RunCap   float64 `toml:"run_cap"`
	ClimbCap float64 `toml:"climb_cap"`

	StopEpsilon         float64 `toml:"stop_epsilon"`          // |vx| at or below this snaps to 0
	DoubleJumpThreshold float64 `toml:"double_jump_threshold"` // vy below this allows the second jump
	TerminalVelocity    float64 `toml:"terminal_velocity"`     // 0 leaves fall speed unbounded

	AllowAirControl bool    `toml:"allow_air_control"`
	DoubleJump      bool    `toml:"double_jump"`
	WallRunJump     bool    `toml:"wall_run_jump"`
	WallJumpRatioX  float64 `toml:"wall_jump_ratio_x"`
	WallJumpRatioY  float64 `toml:"wall_jump_ratio_y"`
}

// PoolConfig seeds one character resource pool.
type PoolConfig struct {
	Current       int `toml:"current"`
	Max           int `toml:"max"`
	RegenAmount   int `toml:"regen_amount"`
	RegenInterval int `toml:"regen_interval"`
	DrainAmount   int `toml:"drain_amount"`
	DrainInterval int `toml:"drain_interval"`
}

// CharacterConfig contains the playable character defaults.
type CharacterConfig struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	StartX float64 `toml:"start_x"`
	StartY float64 `toml:"start_y"`

	JumpCost  int `toml:"jump_cost"`
	ClimbCost int `toml:"climb_cost"`

	Endurance PoolConfig `toml:"endurance"`
	Influence PoolConfig `toml:"influence"`
	Resolve   PoolConfig `toml:"resolve"`
	Strength  PoolConfig `toml:"strength"`
}

// NPCConfig contains the non-playable actor defaults.
type NPCConfig struct {
	Name      string     `toml:"name"`
	Width     float64    `toml:"width"`
	Height    float64    `toml:"height"`
	StartX    float64    `toml:"start_x"`
	StartY    float64    `toml:"start_y"`
	Enabled   bool       `toml:"enabled"`
	Endurance PoolConfig `toml:"endurance"`
}

// LevelConfig describes where level data lives and how sub-levels connect.
type LevelConfig struct {
	Root          string  `toml:"root"`
	Start         int     `toml:"start"`
	StartSubLevel int     `toml:"start_sub_level"`
	ExitMargin    float64 `toml:"exit_margin"`
	EntryMargin   float64 `toml:"entry_margin"`
	SlideTicks    int     `toml:"slide_ticks"`
	CellSize      int     `toml:"cell_size"`
}

// LoggingConfig selects the zap encoder and level.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// Default returns a fresh Config with the stock tuning.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:    1280,
			Height:   960,
			TPS:      60,
			TileSize: 32,
		},
		Physics: PhysicsConfig{
			Gravity:             1,
			Friction:            0.7,
			AirResistance:       1,
			Acceleration:        3,
			JumpStrength:        15,
			WalkCap:             9,
			RunCap:              12,
			ClimbCap:            9 / 1.2,
			StopEpsilon:         0.4,
			DoubleJumpThreshold: 2,
			TerminalVelocity:    0,
			AllowAirControl:     false,
			DoubleJump:          true,
			WallRunJump:         true,
			WallJumpRatioX:      2.5,
			WallJumpRatioY:      0.8,
		},
		Character: CharacterConfig{
			Name:      "Wanderer",
			Width:     64,
			Height:    90,
			StartX:    640,
			StartY:    480,
			JumpCost:  5,
			ClimbCost: 2,
			Endurance: PoolConfig{
				Current:       50,
				Max:           50,
				RegenAmount:   1,
				RegenInterval: 4,
				DrainAmount:   1,
				DrainInterval: 5,
			},
			Influence: PoolConfig{Current: 5, Max: 5, RegenInterval: 1, DrainInterval: 1},
			Resolve:   PoolConfig{Current: 5, Max: 5, RegenInterval: 1, DrainInterval: 1},
			Strength:  PoolConfig{Current: 5, Max: 5, RegenInterval: 1, DrainInterval: 1},
		},
		NPC: NPCConfig{
			Name:    "squishy",
			Width:   64,
			Height:  64,
			StartX:  1280 / 1.5,
			StartY:  480,
			Enabled: true,
			Endurance: PoolConfig{
				Current:       50,
				Max:           50,
				RegenAmount:   1,
				RegenInterval: 4,
				DrainAmount:   1,
				DrainInterval: 5,
			},
		},
		Level: LevelConfig{
			Root:          "levels",
			Start:         1,
			StartSubLevel: 1,
			ExitMargin:    15,
			EntryMargin:   20,
			SlideTicks:    3,
			CellSize:      32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Game.Width, c.Game.Height)
	case c.Game.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Game.TPS)
	case c.Game.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.Game.TileSize)
	case c.Level.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.Level.CellSize)
	case c.Physics.WalkCap <= 0 || c.Physics.RunCap < c.Physics.WalkCap:
		return fmt.Errorf("%w: walk cap %v, run cap %v", ErrInvalidConfig, c.Physics.WalkCap, c.Physics.RunCap)
	case c.Physics.WallJumpRatioX == 0 || c.Physics.WallJumpRatioY == 0:
		return fmt.Errorf("%w: wall jump ratios must be non-zero", ErrInvalidConfig)
	case c.Physics.TerminalVelocity < 0:
		return fmt.Errorf("%w: terminal velocity %v", ErrInvalidConfig, c.Physics.TerminalVelocity)
	case c.Character.Width <= 0 || c.Character.Height <= 0:
		return fmt.Errorf("%w: character box %vx%v", ErrInvalidConfig, c.Character.Width, c.Character.Height)
	case c.NPC.Width <= 0 || c.NPC.Height <= 0:
		return fmt.Errorf("%w: npc box %vx%v", ErrInvalidConfig, c.NPC.Width, c.NPC.Height)
	}

	pools := map[string]PoolConfig{
		"endurance":     c.Character.Endurance,
		"influence":     c.Character.Influence,
		"resolve":       c.Character.Resolve,
		"strength":      c.Character.Strength,
		"npc endurance": c.NPC.Endurance,
	}
	for name, p := range pools {
		if p.RegenInterval <= 0 || p.DrainInterval <= 0 {
			return fmt.Errorf("%w: %s pool intervals must be positive", ErrInvalidConfig, name)
		}
		if p.Max < 0 || p.Current > p.Max {
			return fmt.Errorf("%w: %s pool %d/%d", ErrInvalidConfig, name, p.Current, p.Max)
		}
	}
	return nil
}
