package player

import (
	"errors"

	"chosenoffset.com/petalfield/internal/simulation"
)

// ErrInsufficientPoints is returned when a buff costs more level-points than
// the player has
var ErrInsufficientPoints = errors.New("not enough level points")

// Progress is the persistent progression that survives respawns
type Progress struct {
	Level  int
	XP     int
	Points int

	RotationSpeed float64
	OrbitRange    float64

	cfg simulation.ProgressConfig
}

// NewProgress starts a level 1 player with the configured petal ring
func NewProgress(cfg *simulation.Config) *Progress {
	return &Progress{
		Level:         1,
		RotationSpeed: cfg.Weapons.RotationSpeed,
		OrbitRange:    cfg.Weapons.OrbitRange,
		cfg:           cfg.Progress,
	}
}

// Requirement returns the XP needed to leave the current level
func (p *Progress) Requirement() int {
	return p.cfg.XPRequirement(p.Level)
}

// AddXP awards XP and levels up, granting one point per level. With
// multi-step level ups a large award can cross several thresholds at once;
// otherwise at most one level is gained per award. Returns levels gained.
func (p *Progress) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.XP += amount
	gained := 0
	for p.XP >= p.Requirement() {
		p.XP -= p.Requirement()
		p.Level++
		p.Points++
		gained++
		if !p.cfg.MultiStepLevelUps {
			break
		}
	}
	return gained
}

// BuySpeed spends points on a faster petal rotation
func (p *Progress) BuySpeed() error {
	if p.Points < p.cfg.SpeedBuffCost {
		return ErrInsufficientPoints
	}
	p.Points -= p.cfg.SpeedBuffCost
	p.RotationSpeed += p.cfg.SpeedBuff
	return nil
}

// BuyRange spends points on a wider petal orbit
func (p *Progress) BuyRange() error {
	if p.Points < p.cfg.RangeBuffCost {
		return ErrInsufficientPoints
	}
	p.Points -= p.cfg.RangeBuffCost
	p.OrbitRange += p.cfg.RangeBuff
	return nil
}
