package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// recordingMeter captures counter adds keyed by "<name>" and "<name>|<attr>"
type recordingMeter struct {
	noop.Meter
	totals map[string]int64
}

type recordingCounter struct {
	noop.Int64Counter
	name   string
	totals map[string]int64
}

func (m *recordingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return &recordingCounter{name: name, totals: m.totals}, nil
}

func (c *recordingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	c.totals[c.name] += incr
	attrs := metric.NewAddConfig(opts).Attributes()
	for _, kv := range attrs.ToSlice() {
		c.totals[c.name+"|"+kv.Value.Emit()] += incr
	}
}

func TestCountersRecord(t *testing.T) {
	rm := &recordingMeter{totals: map[string]int64{}}
	m, err := New(rm)
	require.NoError(t, err)

	m.MobKilled("Regular")
	m.MobKilled("Regular")
	m.MobKilled("Boss")
	m.PickupCollected("Glass")
	m.PlayerDied()
	m.LevelsGained(2)
	m.LevelsGained(0)
	m.WeaponHit("Basic")

	assert.Equal(t, int64(3), rm.totals["petalfield.mobs.killed"])
	assert.Equal(t, int64(2), rm.totals["petalfield.mobs.killed|Regular"])
	assert.Equal(t, int64(1), rm.totals["petalfield.mobs.killed|Boss"])
	assert.Equal(t, int64(1), rm.totals["petalfield.pickups.collected|Glass"])
	assert.Equal(t, int64(1), rm.totals["petalfield.player.deaths"])
	assert.Equal(t, int64(2), rm.totals["petalfield.player.levelups"])
	assert.Equal(t, int64(1), rm.totals["petalfield.weapon.hits|Basic"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.MobKilled("Boss")
		m.PickupCollected("Light")
		m.PlayerDied()
		m.LevelsGained(1)
		m.WeaponHit("Stinger")
	})
}

func TestNopAndGlobal(t *testing.T) {
	assert.NotNil(t, Nop())
	g, err := Global()
	require.NoError(t, err)
	assert.NotPanics(t, func() { g.MobKilled("Regular") })
}
