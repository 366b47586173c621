package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/adapter"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/assembler"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/runtime"
	"github.com/alexisbeaulieu97/nuxtvuetify/pkg/diff"
)

const contextBoth = "both"

type resolveOptions struct {
	context        string
	outPath        string
	scanComponents bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Assemble the UI library payload for the client and server contexts",
		Long: `Resolve merges the options file over the module defaults, derives the runtime
configuration and assembles the payload each runtime plugin would hand to the UI
library. Optional adapters are looked up under --root; missing ones are reported
and left out. With --context both the two payloads are compared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.context, "context", contextBoth, "Execution context to assemble: client, server or both")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Also write the runtime configuration to this file")
	cmd.Flags().BoolVar(&opts.scanComponents, "scan-components", false, "Check aliases against the installed UI library instead of the built-in component list")

	return cmd
}

type resolveReport struct {
	Runtime  config.RuntimeConfig                    `json:"runtimeConfig"`
	Payloads map[assembler.Context]assembler.Payload `json:"payloads"`
	Parity   string                                  `json:"parityDiff,omitempty"`
}

func runResolve(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	contexts, err := contextsFor(opts.context)
	if err != nil {
		return newCommandError("resolve", "selecting execution context", err, "Use --context client, server or both.")
	}

	log, err := newCommandLogger(cmd, rootFlags)
	if err != nil {
		return newCommandError("resolve", "creating logger", err, "Check the logger configuration.")
	}

	report, err := buildResolveReport(ctx, log, rootFlags, opts, contexts)
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Module disabled; nothing to resolve.")
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func buildResolveReport(ctx context.Context, log *logger.Logger, rootFlags *rootFlags, opts *resolveOptions, contexts []assembler.Context) (*resolveReport, error) {
	partial, err := loadOptions(rootFlags)
	if err != nil {
		return nil, newCommandError("resolve", "loading options", err, "Check that the file exists and is valid YAML.")
	}
	if len(partial.Ignored) > 0 {
		log.WithFields(map[string]any{"keys": partial.Ignored}).Warn("ignoring unrecognised or malformed options")
	}

	merged := config.MergeDefaults(partial)
	if !merged.Enabled {
		return nil, nil
	}
	rc := config.ToRuntimeConfig(merged)

	if opts.outPath != "" {
		if err := config.WriteRuntimeConfig(opts.outPath, rc); err != nil {
			return nil, newCommandError("resolve", fmt.Sprintf("writing runtime configuration to %q", opts.outPath), err, "Check that the directory exists and is writable.")
		}
	}

	var catalog adapter.Catalog
	if opts.scanComponents {
		catalog = adapter.ModuleCatalog{Root: rootFlags.rootDir}
	}
	resolver := adapter.NewResolver(nil, adapter.NodeModulesLoader{Root: rootFlags.rootDir}, catalog)
	pluginOpts := runtime.Options{Assembler: assembler.New(resolver, log), Logger: log}

	report := &resolveReport{Runtime: rc, Payloads: make(map[assembler.Context]assembler.Payload, len(contexts))}
	for _, execCtx := range contexts {
		if execCtx == assembler.Server && !rc.SSR && len(contexts) > 1 {
			log.Debug("ssr disabled; server payload skipped")
			continue
		}
		plugin := runtime.NewClientPlugin(pluginOpts)
		if execCtx == assembler.Server {
			plugin = runtime.NewServerPlugin(pluginOpts)
		}
		instance, err := plugin.Setup(ctx, runtime.NewMemoryApp(), rc)
		if err != nil {
			return nil, newCommandError("resolve", fmt.Sprintf("assembling the %s payload", execCtx), err, "Run with --verbose for details.")
		}
		report.Payloads[execCtx] = instance.(assembler.Payload)
	}

	client, hasClient := report.Payloads[assembler.Client]
	server, hasServer := report.Payloads[assembler.Server]
	if hasClient && hasServer {
		delta, err := assembler.Parity(client, server)
		if err != nil {
			return nil, newCommandError("resolve", "comparing payloads", err, "Run with --verbose for details.")
		}
		if diff.HasChanges(delta) {
			log.Warn("client and server payloads differ")
		}
		report.Parity = delta
	}

	return report, nil
}

func contextsFor(value string) ([]assembler.Context, error) {
	switch value {
	case string(assembler.Client):
		return []assembler.Context{assembler.Client}, nil
	case string(assembler.Server):
		return []assembler.Context{assembler.Server}, nil
	case contextBoth, "":
		return []assembler.Context{assembler.Client, assembler.Server}, nil
	default:
		return nil, fmt.Errorf("unknown context %q", value)
	}
}
