package commands

import (
	"github.com/dyluth/peyote/internal/printer"
	"github.com/dyluth/peyote/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default peyote.yml",
	Long: `Write a default peyote.yml configuration file.

The file documents every setting with its default value and can be passed
to "peyote serve --config".

Use --force to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing peyote.yml")
	initCmd.Flags().StringVarP(&initDir, "dir", "d", ".", "Directory to write peyote.yml into")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := scaffold.Initialize(initDir, forceInit)
	if err != nil {
		return printer.Error(
			"initialization failed",
			err.Error(),
			[]string{"Use --force to overwrite", "Use --dir to write elsewhere"},
		)
	}

	scaffold.PrintSuccess(path)
	return nil
}
