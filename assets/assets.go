package assets

import (
	"embed"
)

// LevelsDir is the directory inside Levels holding the bundled levels.
const LevelsDir = "levels"

// DefaultLevel is played when no level is named on the command line.
const DefaultLevel = "level1"

// Levels holds every bundled level file.
//
//go:embed levels
var Levels embed.FS
