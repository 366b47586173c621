package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Lint the options file without resolving anything",
		Long: `Validate merges the options file over the module defaults and reports every
unknown token, malformed colour and undefined default theme. Resolution itself
never fails on these; validate surfaces them before they silently drop features.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags) error {
	partial, err := loadOptions(rootFlags)
	if err != nil {
		return newCommandError("validate", "loading options", err, "Check that the file exists and is valid YAML.")
	}

	out := cmd.OutOrStdout()
	if err := config.Validate(config.MergeDefaults(partial)); err != nil {
		return newCommandError("validate", "checking options", err, "Fix the listed fields; unknown names are dropped at runtime.")
	}

	if len(partial.Ignored) > 0 {
		fmt.Fprintf(out, "Options are valid (%d ignored: %s)\n", len(partial.Ignored), strings.Join(partial.Ignored, ", "))
		return nil
	}
	fmt.Fprintln(out, "Options are valid")
	return nil
}
