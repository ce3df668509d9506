package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(1)))
	for i := 0; i < 500; i++ {
		v := r.Range(-3, 3)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 3.0)

		n := r.IntRange(-2, 2)
		assert.GreaterOrEqual(t, n, -2)
		assert.LessOrEqual(t, n, 2)
	}
	assert.Equal(t, 5.0, r.Range(5, 5))
	assert.Equal(t, 5, r.IntRange(5, 1))
}

func TestPointInRespectsMargin(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 500; i++ {
		p := r.PointIn(3500, 100)
		assert.True(t, p.InBounds(3400), "point %v outside safe margin", p)
	}
	assert.Zero(t, r.PointIn(100, 200))
}

func TestPickThresholds(t *testing.T) {
	table := []Weight{{Threshold: 0.09, Value: 2}, {Threshold: 0.54, Value: 0}, {Threshold: 1, Value: 1}}
	assert.Equal(t, 2, Pick(table, 0.0))
	assert.Equal(t, 2, Pick(table, 0.0899))
	assert.Equal(t, 0, Pick(table, 0.09))
	assert.Equal(t, 0, Pick(table, 0.5399))
	assert.Equal(t, 1, Pick(table, 0.54))
	assert.Equal(t, 1, Pick(table, 0.9999))
}

func TestWeightedEmptyTable(t *testing.T) {
	assert.Equal(t, 0, NewSeeded(1).Weighted(nil))
}
