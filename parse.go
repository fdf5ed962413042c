package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/parser"
)

func newParseCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return parseFile(args[0], format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json, yaml)")
	return cmd
}

func parseFile(path, format string, out io.Writer) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"nodes": ast.NodeCount(prog),
		"depth": ast.Depth(prog),
	}).Debug("parsed program")

	tree := ast.Dump(prog)
	switch format {
	case "text":
		ast.WriteText(out, tree)
	case "json":
		if err := ast.WriteJSON(out, tree); err != nil {
			return errors.Wrap(err, "writing JSON")
		}
	case "yaml":
		if err := ast.WriteYAML(out, tree); err != nil {
			return errors.Wrap(err, "writing YAML")
		}
	default:
		return errors.Errorf("unknown format %q (text, json, yaml)", format)
	}
	return nil
}
