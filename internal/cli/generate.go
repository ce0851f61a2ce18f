package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/svgattr/internal/codegen"
	"github.com/roach88/svgattr/internal/phash"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output   string
	Package  string
	MaxSeeds uint32
	MaxSize  int
}

// GenerateResult describes a generated file.
type GenerateResult struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Count  int    `json:"count"`
	Seed   uint32 `json:"seed"`
	Size   int    `json:"size"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate [source]",
		Short: "Generate attribute constants and lookup table",
		Long: `Generate the Go source of the attribute package from a CUE source list.

The list is validated, a collision-free hash seed is searched, and the
constants, name table and lookup table are written to the output file.
Use -o - to write to stdout.

Examples:
  svgattr generate
  svgattr generate -o attribute_gen.go attributes.cue`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file, - for stdout (default from config)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Go package name (default from config)")
	cmd.Flags().Uint32Var(&opts.MaxSeeds, "max-seeds", 0, "seeds to try per table size (default from config)")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 0, "largest table size to try (default from config)")

	return cmd
}

func runGenerate(opts *GenerateOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, nil)
	}
	if len(args) == 1 {
		cfg.Source = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("package") {
		cfg.Package = opts.Package
	}
	if flags.Changed("max-seeds") {
		cfg.MaxSeeds = opts.MaxSeeds
	}
	if flags.Changed("max-size") {
		cfg.MaxSize = opts.MaxSize
	}
	if err := cfg.Validate(); err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, nil)
	}

	list, err := loadSource(f, cfg.Source)
	if err != nil {
		return err
	}

	src, table, err := codegen.Generate(list, cfg.Package, filepath.Base(cfg.Source), cfg.PhashOptions())
	if err != nil {
		var vErr *codegen.ValidationFailedError
		if errors.As(err, &vErr) {
			return outputValidationErrors(f, cfg.Source, len(list.Entries), vErr.Errors)
		}
		if errors.Is(err, phash.ErrNoSeed) {
			return f.Fail(ExitCommandError, ErrCodeTableBuild, err.Error(), nil,
				map[string]any{"max_seeds": cfg.MaxSeeds, "max_size": cfg.MaxSize})
		}
		return f.Fail(ExitCommandError, ErrCodeTableBuild, err.Error(), nil, nil)
	}
	slog.Debug("table built", "seed", table.Seed, "size", table.Size())

	if cfg.Output == "-" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return f.Fail(ExitCommandError, ErrCodeWrite, err.Error(), nil, nil)
	}

	result := GenerateResult{
		Source: cfg.Source,
		Output: cfg.Output,
		Count:  len(list.Entries),
		Seed:   table.Seed,
		Size:   table.Size(),
	}
	return f.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Generated %s from %s (%d attributes, seed %#x, %d slots)\n",
			result.Output, result.Source, result.Count, result.Seed, result.Size)
	})
}
