package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bowlscore/internal/domain"
)

var rollTableFlag bool
var rollTitleFlag string

// rollCmd represents the roll command.
var rollCmd = newRollCmd()

func newRollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll [marks...]",
		Short: "Score a sequence of rolls",
		Long:  rollLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Roll(domain.RollArgs{
				Title: rollTitleFlag,
				Marks: args,
				Table: rollTableFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&rollTableFlag, "table", false, "render the scorecard as a table")
	cmd.Flags().StringVarP(&rollTitleFlag, "title", "t", "", "title shown above the scorecard")

	return cmd
}

func init() {
	rootCmd.AddCommand(rollCmd)
}
