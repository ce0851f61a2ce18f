package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/svgattr/attribute"
	"github.com/roach88/svgattr/internal/attrlist"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	Strict bool
}

// Classification is the outcome for one input name.
type Classification struct {
	Input      string `json:"input"`
	Recognized bool   `json:"recognized"`
	Kind       string `json:"kind,omitempty"`
	Tag        *int   `json:"tag,omitempty"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify [name...]",
		Short: "Classify attribute names",
		Long: `Classify attribute names exactly as the parser would.

Names are matched byte for byte against the canonical spellings. With no
arguments, one name per line is read from stdin.

Examples:
  svgattr classify fill stroke-width Fill
  svgattr classify --strict < names.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit 1 if any name is unrecognized")

	return cmd
}

func runClassify(opts *ClassifyOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	names := args
	if len(names) == 0 {
		var err error
		names, err = readLines(cmd.InOrStdin())
		if err != nil {
			return f.Fail(ExitCommandError, attrlist.ErrCodeGeneric, fmt.Sprintf("reading stdin: %v", err), nil, nil)
		}
	}

	results := make([]Classification, len(names))
	unrecognized := 0
	for i, name := range names {
		results[i] = classify(name)
		if !results[i].Recognized {
			unrecognized++
		}
	}

	err := f.Emit(results, func(w io.Writer) {
		for _, r := range results {
			if r.Recognized {
				fmt.Fprintf(w, "%q\t%s (%d)\n", r.Input, r.Kind, *r.Tag)
			} else {
				fmt.Fprintf(w, "%q\tunrecognized\n", r.Input)
			}
		}
	})
	if err != nil {
		return err
	}

	if opts.Strict && unrecognized > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d unrecognized name(s)", unrecognized))
	}
	return nil
}

func classify(name string) Classification {
	var a attribute.Attribute
	if !attribute.FromName(name, &a) {
		return Classification{Input: name}
	}
	tag := int(a)
	return Classification{Input: name, Recognized: true, Kind: a.String(), Tag: &tag}
}

// readLines returns the lines of r without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
