package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/module"
)

type planOptions struct {
	hostVersion string
	dev         bool
	modules     []string
}

func newPlanCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what the module registers with the host build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.hostVersion, "host-version", "4.0.0", "Host framework version to check compatibility against")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "Plan for a development build")
	cmd.Flags().StringSliceVar(&opts.modules, "with-module", nil, "Host modules present alongside this one (e.g. @nuxtjs/i18n)")

	return cmd
}

type planReport struct {
	Module   string           `json:"module"`
	Version  string           `json:"version"`
	Disabled bool             `json:"disabled,omitempty"`
	Plan     module.BuildPlan `json:"plan"`
	Plugins  []string         `json:"plugins"`
}

func runPlan(cmd *cobra.Command, rootFlags *rootFlags, opts *planOptions) error {
	partial, err := loadOptions(rootFlags)
	if err != nil {
		return newCommandError("plan", "loading options", err, "Check that the file exists and is valid YAML.")
	}

	log, err := newCommandLogger(cmd, rootFlags)
	if err != nil {
		return newCommandError("plan", "creating logger", err, "Check the logger configuration.")
	}

	host := &module.RecordingHost{
		HostVersion: opts.hostVersion,
		Root:        rootFlags.rootDir,
		IsDev:       opts.dev,
		Modules:     opts.modules,
	}
	result, err := module.Setup(cmd.Context(), host, partial, module.SetupOptions{Logger: log})
	if err != nil {
		return newCommandError("plan", fmt.Sprintf("registering with host %s", opts.hostVersion), err, fmt.Sprintf("The module supports host versions %s.", module.Compatibility))
	}

	desc := module.Describe()
	report := planReport{
		Module:   desc.Name,
		Version:  desc.Version,
		Disabled: result.Disabled,
		Plan:     result.Plan,
		Plugins:  []string{},
	}
	for _, p := range result.Plugins {
		report.Plugins = append(report.Plugins, p.Name())
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
