package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/platformer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "mine.yaml")
	doc := "platforms:\n  - position: {x: 0, y: 1040}\n    size: {x: 1920, y: 40}\n"
	require.NoError(t, os.WriteFile(onDisk, []byte(doc), 0o644))

	tests := []struct {
		name    string
		arg     string
		wantErr error
		hint    string
	}{
		{name: "bundled by stem", arg: "level1"},
		{name: "bundled with extension", arg: "towers.yaml"},
		{name: "bundled tmx", arg: "caverns"},
		{name: "file on disk", arg: onDisk},
		{name: "typo gets a suggestion", arg: "levl1", wantErr: leveldata.ErrMissingFile, hint: `did you mean "level1.json"`},
		{name: "missing path", arg: filepath.Join(dir, "absent.json"), wantErr: leveldata.ErrMissingFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := loadLevel(tt.arg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotEmpty(t, level.Platforms)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.hint != "" {
				assert.Contains(t, err.Error(), tt.hint)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	doc := `{"platforms": [{"position": {"x": 80, "y": 360}, "size": {"x": 100, "y": 20}}]}`
	require.NoError(t, os.WriteFile(bad, []byte(doc), 0o644))

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	defer checkCmd.SetOut(nil)

	require.NoError(t, runCheck(checkCmd, []string{"level1"}), out.String())
	assert.Contains(t, out.String(), "ok")

	out.Reset()
	require.Error(t, runCheck(checkCmd, []string{bad}), "check of a bad level should fail")
	for _, want := range []string{"spawn", "platforms[0]", "collectibles"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestLevelsCommand(t *testing.T) {
	var out bytes.Buffer
	levelsCmd.SetOut(&out)
	defer levelsCmd.SetOut(nil)

	require.NoError(t, levelsCmd.RunE(levelsCmd, nil))

	assert.Equal(t, "  caverns.tmx\n  level1.json\n  towers.yaml\n\nRun 'platformer --level <name>' to play one.\n", out.String())
}
