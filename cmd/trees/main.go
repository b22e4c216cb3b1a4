// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const asciiLogo = `
████████╗██████╗ ███████╗███████╗███████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██╔════╝
   ██║   ██████╔╝█████╗  █████╗  ███████╗
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ╚════██║
   ██║   ██║  ██║███████╗███████╗███████║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝
BST, AVL and Red-Black trees side by side [Version: %s]

`

func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		config     *Config
		logger     *logrus.Logger
	)

	logo := fmt.Sprintf(asciiLogo, version)

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launches an interactive shell over the three trees",
		Long:  fmt.Sprintf("%s\n%s", logo, `Shell reads "[tree] <op> [keys...]" lines from stdin. Type help inside for the list of operations.`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, config, logger)
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compares insert and lookup cost of the three trees",
		Long:  fmt.Sprintf("%s\n%s", logo, `Bench builds every tree from the same keys at each size and looks up a tenth of them.`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchCmd(cmd, config, logger)
		},
	}
	cmdBench.Flags().IntSlice("sizes", nil, "tree sizes to measure (default from config)")
	cmdBench.Flags().Int("samples", 0, "runs averaged per size and tree (default from config)")
	cmdBench.Flags().Bool("random", false, "use distinct random keys instead of ascending ones")
	cmdBench.Flags().Int64("seed", 0, "seed for --random (default from config)")
	cmdBench.Flags().Bool("quiet", false, "hide the progress bar")
	cmdBench.Flags().String("csv", "", "also write results as CSV to this file")
	cmdBench.Flags().Bool("chart", false, "show the results as bar charts")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Trees usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the trees CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Long:  fmt.Sprintf("%s\n%s", logo, `Settings prints the configuration and creates the default file when missing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Trees version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "trees",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig(configPath)
			logger = newLogger(cmd.ErrOrStderr(), config.Log.Level, verbose)
			if err != nil {
				logger.WithError(err).Warn("Failed to load configuration. Using default settings.")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to shell command when no subcommand is provided
			return runShell(cmd, config, logger)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(cmdShell, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func runShell(cmd *cobra.Command, config *Config, logger *logrus.Logger) error {
	shell, err := NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), config, logger)
	if err != nil {
		return err
	}
	if err := shell.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runBenchCmd(cmd *cobra.Command, config *Config, logger *logrus.Logger) error {
	flags := cmd.Flags()
	opts := BenchOptions{
		Sizes:   config.Bench.Sizes,
		Samples: config.Bench.Samples,
		Random:  config.Bench.RandomKeys,
		Seed:    config.Bench.Seed,
	}
	if flags.Changed("sizes") {
		opts.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Changed("samples") {
		opts.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("random") {
		opts.Random, _ = flags.GetBool("random")
	}
	if flags.Changed("seed") {
		opts.Seed, _ = flags.GetInt64("seed")
	}
	opts.Quiet, _ = flags.GetBool("quiet")
	for _, n := range opts.Sizes {
		if n <= 0 {
			return fmt.Errorf("sizes must be positive, got %d", n)
		}
	}

	results, err := runBench(cmd.Context(), opts, cmd.ErrOrStderr(), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderResults(results, newStyles(detectTerminalMode())))

	if path, _ := flags.GetString("csv"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create csv file: %w", err)
		}
		if err := writeCSV(f, results); err != nil {
			f.Close()
			return fmt.Errorf("failed to write csv file: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.WithField("path", path).Info("wrote benchmark csv")
	}

	if chart, _ := flags.GetBool("chart"); chart {
		return showChart(results)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
