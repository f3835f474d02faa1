// Package cmd provides the root command and CLI setup for bowlscore.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/bowlscore/internal/adapter"
	"github.com/mouse-blink/bowlscore/internal/controller"
	"github.com/mouse-blink/bowlscore/internal/domain"
	m "github.com/mouse-blink/bowlscore/internal/model"
)

var store adapter.SheetStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	store = adapter.NewLocalSheetStore()
	workflow = domain.NewWorkflow(store, ui)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bowlscore",
		Short:        "Ten-pin bowling scorer",
		Long:         rootLongDescription,
		SilenceUsage: true,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
