package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyPatrolTurnsAtBounds(t *testing.T) {
	e := NewEnemy(200, 500, 40, 40, gray, 3, 10)

	var xs []float64
	for i := 0; i < 12; i++ {
		e.Update()
		xs = append(xs, e.Position.X)
	}

	// Right to 212 (past 210), back left to 188 (past 190), then right again.
	want := []float64{203, 206, 209, 212, 209, 206, 203, 200, 197, 194, 191, 188}
	assert.Equal(t, want, xs)
	assert.True(t, e.MovingRight, "enemy should be heading right after passing the left bound")
}

func TestEnemyZeroRangeOscillates(t *testing.T) {
	e := NewEnemy(100, 0, 10, 10, gray, 2, 0)

	steps := []struct {
		wantX     float64
		wantRight bool
	}{
		{102, false},
		{100, false},
		{98, true},
	}
	for i, step := range steps {
		e.Update()
		require.Equal(t, step.wantX, e.Position.X, "frame %d", i+1)
		require.Equal(t, step.wantRight, e.MovingRight, "frame %d", i+1)
	}
}

func TestEnemyBoundChecksAreIndependent(t *testing.T) {
	// A negative range makes both bounds trip on one frame; the left check
	// runs last and decides the direction.
	e := &Enemy{Entity: NewEntity(0, 0, 10, 10, gray), Speed: 1, MoveRange: -10, MovingRight: true}

	e.Update()

	assert.True(t, e.MovingRight, "left-bound check should have run after the right-bound check")
}

func TestNewEnemyDefaults(t *testing.T) {
	e := NewEnemy(50, 60, 40, 40, gray, 0, -1)

	assert.Equal(t, 3.0, e.Speed)
	assert.Equal(t, 100.0, e.MoveRange)
	assert.Equal(t, 50.0, e.StartX())
	assert.True(t, e.MovingRight)
}
