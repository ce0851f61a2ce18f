package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/svgattr/internal/attrlist"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [source]",
		Short: "Validate the attribute source list",
		Long: `Validate a CUE attribute source list without generating code.

Checks schema conformance, duplicate names and identifiers, identifier
syntax, spelling rules and the list size.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, nil)
	}
	source := cfg.Source
	if len(args) == 1 {
		source = args[0]
	}

	list, err := loadSource(f, source)
	if err != nil {
		return err
	}

	if errs := attrlist.Validate(list.Entries); len(errs) > 0 {
		return outputValidationErrors(f, source, len(list.Entries), errs)
	}

	result := ValidationResult{Valid: true, Source: source, Count: len(list.Entries)}
	return f.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ %s valid (%d attributes)\n", result.Source, result.Count)
	})
}
