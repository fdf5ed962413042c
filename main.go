package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wildfunctions/khwarizmi/pkg/config"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "khwarizmi [FILE]",
		Short:         "Run Khwarizmi programs",
		Long:          "Evaluate Khwarizmi programs with int, bool and symbolic eq variables.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFile(args[0], os.Stdin, cmd.OutOrStdout(), opts.cfg)
		},
	}
	addGlobalFlags(rootCmd.PersistentFlags(), opts)
	rootCmd.AddCommand(newRunCommand(opts), newParseCommand())
	return rootCmd
}

func addGlobalFlags(flags *pflag.FlagSet, opts *globalOptions) {
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default $"+config.EnvVar+")")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultConfig().LogLevel, "log messages above specified level (trace, debug, info, warn, error)")
}

// setup resolves the config and applies it to the logger. Flags override
// the config file.
func (o *globalOptions) setup(flags *pflag.FlagSet) error {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)
	logrus.SetFormatter(cfg.Formatter())
	logrus.SetOutput(os.Stderr)
	o.cfg = cfg
	logrus.WithField("config", o.configPath).Debug("configuration loaded")
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
