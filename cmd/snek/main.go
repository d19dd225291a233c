// snek is a real-time snake game running on an archetype ECS.
//
// Usage:
//
//	snek            - Play (same as 'snek play')
//	snek play       - Play the game
//	snek scores     - Show the top recorded runs
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (default search: ~/.snek/config.yaml)
//	--seed <value>   - Food RNG seed (0 = random)
//	--debug          - Enable the Dear ImGui overlay (F3 toggles it in game)
//	--mute           - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint64
	flagDebug  bool
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snake! - a real-time snake game",
	Long: `Snake on a wrapping 10x10 grid. Eat the magenta food, grow, and
don't run into yourself. Running snek without a subcommand starts a game.

Available commands:
  play     - Play the game (the default)
  scores   - View the top recorded runs

Examples:
  snek
  snek play --seed 42
  snek play --debug
  snek scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Food RNG seed (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable the Dear ImGui debug overlay")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
