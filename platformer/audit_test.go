package platformer

import (
	"testing"

	"github.com/automoto/platformer/shared/leveldata"
	"github.com/stretchr/testify/assert"
)

func subjects(findings []Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Subject)
	}
	return out
}

func findingFor(findings []Finding, subject string) (Finding, bool) {
	for _, f := range findings {
		if f.Subject == subject {
			return f, true
		}
	}
	return Finding{}, false
}

func TestAuditCleanLevel(t *testing.T) {
	assert.Empty(t, AuditLevel(testLevel()))
}

func TestAuditFindings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*leveldata.Level)
		subject string
		problem string
	}{
		{
			name:    "spawn inside platform",
			mutate:  func(l *leveldata.Level) { l.Spawn.Y = 360 },
			subject: "spawn",
			problem: "inside platforms[0]",
		},
		{
			name:    "spawn on enemy",
			mutate:  func(l *leveldata.Level) { l.Spawn.X = 590.5 },
			subject: "spawn",
			problem: "touching enemies[0]",
		},
		{
			name:    "spawn outside world",
			mutate:  func(l *leveldata.Level) { l.Spawn.X = 1900 },
			subject: "spawn",
			problem: "outside the world",
		},
		{
			name:    "collectible sunk",
			mutate:  func(l *leveldata.Level) { l.Collectibles[0].Y = 385 },
			subject: "collectibles[0]",
			problem: "sunk into platforms[0]",
		},
		{
			name:    "platform outside world",
			mutate:  func(l *leveldata.Level) { l.Platforms[0].W = 2000 },
			subject: "platforms[0]",
			problem: "outside",
		},
		{
			name:    "patrol leaves world",
			mutate:  func(l *leveldata.Level) { l.Enemies[0].MoveRange = 700 },
			subject: "enemies[0]",
			problem: "leaves the world",
		},
		{
			name: "patrol overshoots left edge",
			mutate: func(l *leveldata.Level) {
				l.Enemies[0].X, l.Enemies[0].MoveRange, l.Enemies[0].Speed = 0, 0, 3
			},
			subject: "enemies[0]",
			problem: "patrol -3..",
		},
		{
			name: "patrol overshoots right edge",
			mutate: func(l *leveldata.Level) {
				l.Enemies[0].X, l.Enemies[0].MoveRange, l.Enemies[0].Speed = 1880, 0, 3
			},
			subject: "enemies[0]",
			problem: "..1923 leaves the world",
		},
		{
			name:    "no collectibles",
			mutate:  func(l *leveldata.Level) { l.Collectibles = nil },
			subject: "collectibles",
			problem: "won on the first frame",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := testLevel()
			tt.mutate(level)

			findings := AuditLevel(level)

			f, ok := findingFor(findings, tt.subject)
			if assert.True(t, ok, "no %s finding in %v", tt.subject, findings) {
				assert.Contains(t, f.Problem, tt.problem)
			}
		})
	}
}

func TestAuditPatrolMatchesEnemyTravel(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		wantClean bool
	}{
		{"overshoot past the edge", 0, false},
		{"overshoot lands on the edge", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := testLevel()
			level.Enemies[0].X, level.Enemies[0].MoveRange, level.Enemies[0].Speed = tt.x, 0, 3
			level.Enemies[0].Y = 200

			// Run the patrol itself and record how far left it gets.
			e := NewEnemy(tt.x, 200, 40, 40, gray, 3, 0)
			minX := e.Position.X
			for i := 0; i < 10; i++ {
				e.Update()
				minX = min(minX, e.Position.X)
			}
			_, flagged := findingFor(AuditLevel(level), "enemies[0]")

			assert.Equal(t, tt.wantClean, minX >= 0, "patrol reached %v", minX)
			assert.Equal(t, !tt.wantClean, flagged)
		})
	}
}

func TestAuditIgnoresEdgeContact(t *testing.T) {
	level := testLevel()
	// Standing exactly on the platform and exactly beside the enemy.
	level.Spawn = leveldata.Point{X: 560, Y: 350}

	assert.NotContains(t, subjects(AuditLevel(level)), "spawn")
}
