package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bowlscore/internal/domain"
)

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [marks...]",
		Short: "Enter a game roll by roll",
		Long:  playLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Play(domain.PlayArgs{Marks: args})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}
