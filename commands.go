package main

import (
	"fmt"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/platformer"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := leveldata.List(assets.Levels, assets.LevelsDir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, n := range names {
			fmt.Fprintf(out, "  %s\n", n)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'platformer --level <name>' to play one.")
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Load a level and report layout problems",
	Long: `Loads the level the same way the game does and lists anything that loads
fine but plays badly: objects outside the world, patrols that leave it, a
spawn point inside a platform or enemy, collectibles sunk into platforms.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	level, err := loadLevel(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	findings := platformer.AuditLevel(level)
	if len(findings) == 0 {
		fmt.Fprintf(out, "%s: ok (%d platforms, %d collectibles, %d enemies)\n",
			level.Source, len(level.Platforms), len(level.Collectibles), len(level.Enemies))
		return nil
	}

	for _, f := range findings {
		fmt.Fprintf(out, "%s: %s\n", level.Source, f)
	}
	return fmt.Errorf("%d problem(s) in %s", len(findings), level.Source)
}
