// Package simulation provides configuration for the arena simulation rules.
// Every tunable lives here; defaults reproduce the stock game and can be
// overridden from a config file or PETALFIELD_* environment variables.
package simulation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all simulation rules for a session
type Config struct {
	World      WorldConfig      `mapstructure:"world"`
	Player     PlayerConfig     `mapstructure:"player"`
	Weapons    WeaponConfig     `mapstructure:"weapons"`
	Progress   ProgressConfig   `mapstructure:"progress"`
	Regular    TierConfig       `mapstructure:"regular"`
	Boss       TierConfig       `mapstructure:"boss"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Window     WindowConfig     `mapstructure:"window"`

	Seed     int64  `mapstructure:"seed"`     // 0 = seed from the clock
	LogLevel string `mapstructure:"logLevel"` // trace|debug|info|warn|error
}

// WorldConfig defines the arena and its population
type WorldConfig struct {
	Size           float64 `mapstructure:"size"`           // half-extent: positions live in [-Size, Size]
	RadarRange     float64 `mapstructure:"radarRange"`     // world distance covered by the minimap
	MobCount       int     `mapstructure:"mobCount"`       // regular mobs per session
	BossCount      int     `mapstructure:"bossCount"`      // boss mobs per session
	PickupRadius   float64 `mapstructure:"pickupRadius"`   // player-to-pickup collection distance
	HitFlash       float64 `mapstructure:"hitFlash"`       // seconds a hit flash is shown
	TicksPerSecond int     `mapstructure:"ticksPerSecond"` // fixed simulation cadence
	UIDebounce     float64 `mapstructure:"uiDebounce"`     // seconds between accepted panel clicks
}

// PlayerConfig defines the player avatar
type PlayerConfig struct {
	MaxHealth       float64 `mapstructure:"maxHealth"`
	RegenAmount     float64 `mapstructure:"regenAmount"`
	RegenInterval   float64 `mapstructure:"regenInterval"`   // seconds between regen ticks
	RegenAfterFight float64 `mapstructure:"regenAfterFight"` // seconds since last attack before regen
	HitCooldown     float64 `mapstructure:"hitCooldown"`     // shared damage rate limit
	Smoothing       float64 `mapstructure:"smoothing"`       // pointer-follow factor per tick
	Radius          float64 `mapstructure:"radius"`
}

// WeaponConfig defines the petal ring
type WeaponConfig struct {
	SlotCount     int     `mapstructure:"slotCount"`
	RotationSpeed float64 `mapstructure:"rotationSpeed"` // radians per tick
	OrbitRange    float64 `mapstructure:"orbitRange"`
}

// ProgressConfig defines the XP curve and buff shop
type ProgressConfig struct {
	XPBase            int     `mapstructure:"xpBase"`
	XPIncrement       int     `mapstructure:"xpIncrement"`
	SpeedBuff         float64 `mapstructure:"speedBuff"`
	SpeedBuffCost     int     `mapstructure:"speedBuffCost"`
	RangeBuff         float64 `mapstructure:"rangeBuff"`
	RangeBuffCost     int     `mapstructure:"rangeBuffCost"`
	MultiStepLevelUps bool    `mapstructure:"multiStepLevelUps"`
}

// TierConfig is the stat record of one mob tier
type TierConfig struct {
	Radius          float64 `mapstructure:"radius"`
	MaxHealth       float64 `mapstructure:"maxHealth"`
	Speed           float64 `mapstructure:"speed"`
	HitRadius       float64 `mapstructure:"hitRadius"`     // petal-to-mob hit distance
	ContactRadius   float64 `mapstructure:"contactRadius"` // mob-to-player contact distance
	ContactDamage   float64 `mapstructure:"contactDamage"`
	Knockback       float64 `mapstructure:"knockback"`
	ContactPassive  bool    `mapstructure:"contactPassive"` // contact hurts even before aggression
	XP              int     `mapstructure:"xp"`
	RespawnSeconds  float64 `mapstructure:"respawnSeconds"`
	SpawnMargin     float64 `mapstructure:"spawnMargin"`
	Ranged          bool    `mapstructure:"ranged"`
	RangedInterval  float64 `mapstructure:"rangedInterval"`
	EngagementRange float64 `mapstructure:"engagementRange"`
}

// ProjectileConfig defines the boss missile
type ProjectileConfig struct {
	Speed     float64 `mapstructure:"speed"`
	TTL       float64 `mapstructure:"ttl"`
	Damage    float64 `mapstructure:"damage"`
	HitRadius float64 `mapstructure:"hitRadius"`
}

// WindowConfig defines the presentation window
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Title      string `mapstructure:"title"`
}

// DefaultConfig returns the stock arena rules
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Size:           3500,
			RadarRange:     2000,
			MobCount:       30,
			BossCount:      1,
			PickupRadius:   35,
			HitFlash:       0.1,
			TicksPerSecond: 60,
			UIDebounce:     0.2,
		},
		Player: PlayerConfig{
			MaxHealth:       100,
			RegenAmount:     2,
			RegenInterval:   2,
			RegenAfterFight: 2,
			HitCooldown:     0.3,
			Smoothing:       0.025,
			Radius:          25,
		},
		Weapons: WeaponConfig{
			SlotCount:     5,
			RotationSpeed: 0.04,
			OrbitRange:    85,
		},
		Progress: ProgressConfig{
			XPBase:            100,
			XPIncrement:       50,
			SpeedBuff:         0.015,
			SpeedBuffCost:     1,
			RangeBuff:         20,
			RangeBuffCost:     2,
			MultiStepLevelUps: true,
		},
		Regular: TierConfig{
			Radius:         25,
			MaxHealth:      100,
			Speed:          1.6,
			HitRadius:      37,
			ContactRadius:  50,
			ContactDamage:  15,
			Knockback:      45,
			XP:             25,
			RespawnSeconds: 15,
			SpawnMargin:    100,
		},
		Boss: TierConfig{
			Radius:          75,
			MaxHealth:       500,
			Speed:           3.2,
			HitRadius:       85,
			ContactRadius:   100,
			ContactDamage:   30,
			Knockback:       60,
			ContactPassive:  true,
			XP:              250,
			RespawnSeconds:  60,
			SpawnMargin:     500,
			Ranged:          true,
			RangedInterval:  2,
			EngagementRange: 600,
		},
		Projectile: ProjectileConfig{
			Speed:     7.5,
			TTL:       4,
			Damage:    15,
			HitRadius: 30,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "petalfield",
		},
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, an optional config file and
// PETALFIELD_* environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("PETALFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read simulation config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every field of d so that env overrides and partial
// config files resolve against the stock values.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("logLevel", d.LogLevel)

	v.SetDefault("world.size", d.World.Size)
	v.SetDefault("world.radarRange", d.World.RadarRange)
	v.SetDefault("world.mobCount", d.World.MobCount)
	v.SetDefault("world.bossCount", d.World.BossCount)
	v.SetDefault("world.pickupRadius", d.World.PickupRadius)
	v.SetDefault("world.hitFlash", d.World.HitFlash)
	v.SetDefault("world.ticksPerSecond", d.World.TicksPerSecond)
	v.SetDefault("world.uiDebounce", d.World.UIDebounce)

	v.SetDefault("player.maxHealth", d.Player.MaxHealth)
	v.SetDefault("player.regenAmount", d.Player.RegenAmount)
	v.SetDefault("player.regenInterval", d.Player.RegenInterval)
	v.SetDefault("player.regenAfterFight", d.Player.RegenAfterFight)
	v.SetDefault("player.hitCooldown", d.Player.HitCooldown)
	v.SetDefault("player.smoothing", d.Player.Smoothing)
	v.SetDefault("player.radius", d.Player.Radius)

	v.SetDefault("weapons.slotCount", d.Weapons.SlotCount)
	v.SetDefault("weapons.rotationSpeed", d.Weapons.RotationSpeed)
	v.SetDefault("weapons.orbitRange", d.Weapons.OrbitRange)

	v.SetDefault("progress.xpBase", d.Progress.XPBase)
	v.SetDefault("progress.xpIncrement", d.Progress.XPIncrement)
	v.SetDefault("progress.speedBuff", d.Progress.SpeedBuff)
	v.SetDefault("progress.speedBuffCost", d.Progress.SpeedBuffCost)
	v.SetDefault("progress.rangeBuff", d.Progress.RangeBuff)
	v.SetDefault("progress.rangeBuffCost", d.Progress.RangeBuffCost)
	v.SetDefault("progress.multiStepLevelUps", d.Progress.MultiStepLevelUps)

	setTierDefaults(v, "regular", d.Regular)
	setTierDefaults(v, "boss", d.Boss)

	v.SetDefault("projectile.speed", d.Projectile.Speed)
	v.SetDefault("projectile.ttl", d.Projectile.TTL)
	v.SetDefault("projectile.damage", d.Projectile.Damage)
	v.SetDefault("projectile.hitRadius", d.Projectile.HitRadius)

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)
	v.SetDefault("window.title", d.Window.Title)
}

func setTierDefaults(v *viper.Viper, prefix string, t TierConfig) {
	v.SetDefault(prefix+".radius", t.Radius)
	v.SetDefault(prefix+".maxHealth", t.MaxHealth)
	v.SetDefault(prefix+".speed", t.Speed)
	v.SetDefault(prefix+".hitRadius", t.HitRadius)
	v.SetDefault(prefix+".contactRadius", t.ContactRadius)
	v.SetDefault(prefix+".contactDamage", t.ContactDamage)
	v.SetDefault(prefix+".knockback", t.Knockback)
	v.SetDefault(prefix+".contactPassive", t.ContactPassive)
	v.SetDefault(prefix+".xp", t.XP)
	v.SetDefault(prefix+".respawnSeconds", t.RespawnSeconds)
	v.SetDefault(prefix+".spawnMargin", t.SpawnMargin)
	v.SetDefault(prefix+".ranged", t.Ranged)
	v.SetDefault(prefix+".rangedInterval", t.RangedInterval)
	v.SetDefault(prefix+".engagementRange", t.EngagementRange)
}

// Validate reports the first rule that makes the config unusable
func (c *Config) Validate() error {
	switch {
	case c.World.Size <= 0:
		return errors.New("world.size must be positive")
	case c.World.MobCount < 0 || c.World.BossCount < 0:
		return errors.New("mob counts must not be negative")
	case c.World.TicksPerSecond <= 0:
		return errors.New("world.ticksPerSecond must be positive")
	case c.Player.MaxHealth <= 0:
		return errors.New("player.maxHealth must be positive")
	case c.Player.Smoothing <= 0 || c.Player.Smoothing > 1:
		return errors.New("player.smoothing must be in (0, 1]")
	case c.Weapons.SlotCount != 5:
		return fmt.Errorf("weapons.slotCount must be 5, got %d", c.Weapons.SlotCount)
	case c.Progress.XPBase <= 0 || c.Progress.XPIncrement < 0:
		return errors.New("progress.xpBase must be positive and xpIncrement not negative")
	case c.Progress.SpeedBuffCost <= 0 || c.Progress.RangeBuffCost <= 0:
		return errors.New("buff costs must be positive")
	}
	if err := c.Regular.validate("regular"); err != nil {
		return err
	}
	return c.Boss.validate("boss")
}

func (t TierConfig) validate(name string) error {
	switch {
	case t.MaxHealth <= 0:
		return fmt.Errorf("%s.maxHealth must be positive", name)
	case t.RespawnSeconds < 0:
		return fmt.Errorf("%s.respawnSeconds must not be negative", name)
	case t.Ranged && t.RangedInterval <= 0:
		return fmt.Errorf("%s.rangedInterval must be positive for ranged tiers", name)
	}
	return nil
}

// XPRequirement returns the XP needed to leave the given level
func (c ProgressConfig) XPRequirement(level int) int {
	return c.XPBase + (level-1)*c.XPIncrement
}
