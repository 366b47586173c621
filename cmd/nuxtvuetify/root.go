package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	rootDir    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nuxtvuetify",
		Short:         "nuxtvuetify resolves Vuetify module options into runtime payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the module options file (YAML); defaults apply when omitted")
	cmd.PersistentFlags().StringVar(&flags.rootDir, "root", ".", "Project directory optional packages are installed under")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPlanCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
