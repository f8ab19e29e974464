// Command graphpad is an interactive console for building graphs and running
// the engine's algorithms against them: traversals, shortest paths, adjacency
// views. Type "help" inside the session for the command grammar.
package main

import (
	"fmt"
	"os"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphpad/core"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "graphpad",
	Short: "Interactive graph algorithm console",
	Long: `graphpad - build a graph from the keyboard and interrogate it.

Nodes and edges are edited live; DFS, BFS, Dijkstra and Floyd-Warshall run
against the current state of the graph. All state is in memory and lost on
exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			golog.SetLevel("debug")
		} else {
			golog.SetLevel("warn")
		}

		s := newSession(core.NewGraph(), cmd.OutOrStdout(), golog.Default)

		return s.Run(cmd.InOrStdin())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log command dispatch")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
