package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bowlscore/internal/domain"
)

var scoreParallelFlag int
var scoreTableFlag bool

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [paths...]",
		Short: "Score bowling sheets",
		Long:  scoreLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Score(domain.ScoreArgs{
				Paths:   parsePaths(args),
				Threads: scoreParallelFlag,
				Table:   scoreTableFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&scoreParallelFlag, "parallel", "p", 1, "number of sheets scored in parallel")
	cmd.Flags().BoolVar(&scoreTableFlag, "table", false, "render scorecards as tables")

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
