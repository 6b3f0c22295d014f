package main

import (
	"io"

	"log-stats/internal/app"
	"log-stats/internal/shared/configs"

	"github.com/spf13/cobra"
)

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "logstats",
		Short: "logstats aggregates HTTP access-log lines read from stdin",
		Long: `logstats reads access-log lines from stdin, keeps the total response size
and a count per status code, and prints a report every N accepted lines.
A final report is printed at end of input and on SIGINT/SIGTERM.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			application, err := app.New(cfg, stdin, stdout)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, configs.FlagConfig, "c", "", "optional yaml config file")
	flags.String(configs.FlagLogLevel, "warn", "log level written to stderr (debug, info, warn, error)")
	flags.Int(configs.FlagReportEvery, 10, "accepted lines between periodic reports")
	flags.String(configs.FlagReportMode, "cumulative", "cumulative or windowed (reset after each periodic report)")
	flags.String(configs.FlagStatusCodes, "allow_list", "allow_list or any")
	flags.Bool(configs.FlagServerEnabled, false, "serve /stats, /metrics and /healthz")
	flags.Int(configs.FlagServerPort, 9090, "port of the read-only http server")

	return rootCmd
}
