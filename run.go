package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/khwarizmi/pkg/config"
	"github.com/wildfunctions/khwarizmi/pkg/console"
	"github.com/wildfunctions/khwarizmi/pkg/eval"
	"github.com/wildfunctions/khwarizmi/pkg/parser"
	"github.com/wildfunctions/khwarizmi/pkg/scope"
)

func newRunCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Parse and evaluate a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], os.Stdin, cmd.OutOrStdout(), opts.cfg)
		},
	}
}

func readSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(src), nil
}

// runFile evaluates the program at path. Program output goes to out; input()
// reads from in and prompts on stderr.
func runFile(path string, in *os.File, out io.Writer, cfg config.Config) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}

	reader, closer := console.NewReader(in, os.Stderr, cfg.InputPrompt, logrus.WithField("component", "console"))
	defer closer.Close()

	logrus.WithField("file", path).Debug("evaluating program")
	ev := eval.New(out, reader, cfg, logrus.NewEntry(logrus.StandardLogger()))
	return ev.EvaluateProgram(prog, scope.NewArena().Root())
}
