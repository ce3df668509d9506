// Package telemetry records gameplay counters through OpenTelemetry metrics.
// Without a configured provider every instrument is a no-op.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "chosenoffset.com/petalfield"

// Metrics holds the session counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	mobsKilled metric.Int64Counter
	pickups    metric.Int64Counter
	deaths     metric.Int64Counter
	levelUps   metric.Int64Counter
	weaponHits metric.Int64Counter
}

// New creates the counters on the given meter
func New(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.mobsKilled, err = m.Int64Counter(
		"petalfield.mobs.killed",
		metric.WithDescription("Mobs killed by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mobs killed counter: %w", err)
	}

	mt.pickups, err = m.Int64Counter(
		"petalfield.pickups.collected",
		metric.WithDescription("Weapon drops collected into the inventory"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pickups counter: %w", err)
	}

	mt.deaths, err = m.Int64Counter(
		"petalfield.player.deaths",
		metric.WithDescription("Times the player died"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}

	mt.levelUps, err = m.Int64Counter(
		"petalfield.player.levelups",
		metric.WithDescription("Levels gained"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating level ups counter: %w", err)
	}

	mt.weaponHits, err = m.Int64Counter(
		"petalfield.weapon.hits",
		metric.WithDescription("Petal hits landed on mobs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating weapon hits counter: %w", err)
	}

	return &mt, nil
}

// Global creates the counters on the global OTel meter provider
func Global() (*Metrics, error) {
	return New(otel.Meter(instrumentationName))
}

// Nop returns counters backed by the no-op meter
func Nop() *Metrics {
	m, err := New(noop.Meter{})
	if err != nil {
		// noop instruments never fail
		panic(err)
	}
	return m
}

// MobKilled counts a kill of the given tier
func (m *Metrics) MobKilled(tier string) {
	if m == nil {
		return
	}
	m.mobsKilled.Add(context.Background(), 1, metric.WithAttributes(attribute.String("tier", tier)))
}

// PickupCollected counts a collected drop of the given weapon
func (m *Metrics) PickupCollected(weapon string) {
	if m == nil {
		return
	}
	m.pickups.Add(context.Background(), 1, metric.WithAttributes(attribute.String("weapon", weapon)))
}

// PlayerDied counts a player death
func (m *Metrics) PlayerDied() {
	if m == nil {
		return
	}
	m.deaths.Add(context.Background(), 1)
}

// LevelsGained counts n level ups
func (m *Metrics) LevelsGained(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.levelUps.Add(context.Background(), int64(n))
}

// WeaponHit counts a petal hit by the given weapon
func (m *Metrics) WeaponHit(weapon string) {
	if m == nil {
		return
	}
	m.weaponHits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("weapon", weapon)))
}
