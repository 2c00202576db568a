package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/config"
)

var (
	configPath string
	verbose    bool
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "breakdemo",
		Short:         "Render charts with collapsible axis breaks",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			ggchart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "chart config (.toml, .yaml or .yml); built-in demo when empty")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log break geometry and relayouts")

	root.AddCommand(renderCmd(), inspectCmd())
	return root
}

// loadChart builds a chart from --config, or from the demo options.
func loadChart() (*chart.Chart, error) {
	var (
		opts *config.Options
		err  error
	)
	if configPath == "" {
		opts = demoOptions()
	} else if opts, err = config.Load(configPath); err != nil {
		return nil, err
	}
	return chart.New(opts)
}

// demoOptions is a vertical value axis with two collapsed breaks.
func demoOptions() *config.Options {
	o := config.Default()
	o.Axis.Min, o.Axis.Max = 0, 1000
	o.Axis.Breaks = []config.BreakOptions{
		{Start: 150, End: 600, Gap: 20},
		{Start: 700, End: 900, Gap: 20},
	}
	o.Series = []config.SeriesOptions{{
		Name: "requests",
		Data: []float64{40, 90, 120, 650, 80, 960, 110},
	}}
	o.Defaults()
	return o
}
