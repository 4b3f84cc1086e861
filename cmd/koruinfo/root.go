// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/devblok/koruinfo/core"
	"github.com/devblok/koruinfo/device"
	"github.com/devblok/koruinfo/device/vkdriver"
	"github.com/devblok/koruinfo/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd(func() device.Driver { return vkdriver.New() })

type options struct {
	envFiles   []string
	format     string
	output     string
	logLevel   string
	apiVersion string
	beta       bool
	parallel   bool
}

func newRootCmd(newDriver func() device.Driver) *cobra.Command {
	var (
		opts options
		cfg  core.Configuration
	)

	cmd := &cobra.Command{
		Use:   "koruinfo",
		Short: "Inventory the Vulkan physical devices of this machine",
		Long: `koruinfo connects to the Vulkan loader, lists every physical device
and reports its identity, a selection of limits and its queue families.

Exit codes: 0 success, 1 no Vulkan instance, 2 no devices,
3 enumeration failure, 4 usage or output error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = core.LoadConfiguration(opts.envFiles...); err != nil {
				return err
			}
			applyFlags(cmd, opts, &cfg)
			return core.ConfigureLogging(cfg.LogLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, newDriver())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "Load configuration from dotenv files")
	flags.StringVar(&opts.logLevel, "log-level", core.DefaultConfiguration.LogLevel, "Log level (debug, info, warning, error)")

	cmd.Flags().StringVarP(&opts.format, "format", "f", core.DefaultConfiguration.Report.Format, "Report format: text, json, yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to a file, .lz4 compresses it")
	cmd.Flags().StringVar(&opts.apiVersion, "api-version", core.DefaultConfiguration.Application.APIVersion, "Target Vulkan API version")
	cmd.Flags().BoolVar(&opts.beta, "beta", false, "Decode provisional video queue capabilities")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "Inspect devices concurrently")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// applyFlags overrides the configuration with the flags given explicitly
func applyFlags(cmd *cobra.Command, opts options, cfg *core.Configuration) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if changed("format") {
		cfg.Report.Format = opts.format
	}
	if changed("output") {
		cfg.Report.Output = opts.output
	}
	if changed("api-version") {
		cfg.Application.APIVersion = opts.apiVersion
	}
	if changed("beta") {
		cfg.Inventory.BetaExtensions = opts.beta
	}
	if changed("parallel") {
		cfg.Inventory.Parallel = opts.parallel
	}
}

func run(cmd *cobra.Command, cfg core.Configuration, driver device.Driver) error {
	appInfo, err := cfg.ApplicationInfo()
	if err != nil {
		return err
	}
	formatter, err := report.New(cfg.Report.Format)
	if err != nil {
		return err
	}

	inventory := device.Inventory{
		Driver:               driver,
		Application:          appInfo,
		ExtendedCapabilities: cfg.Inventory.BetaExtensions,
		Parallel:             cfg.Inventory.Parallel,
	}
	reports, err := inventory.Collect()
	if err != nil {
		return err
	}
	log.WithField("devices", len(reports)).Info("inventory collected")

	out, err := report.Create(cfg.Report.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := formatter.Format(out, reports); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
