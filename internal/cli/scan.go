package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/svgattr/internal/census"
	"github.com/roach88/svgattr/internal/scan"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Workers  int
	Database string
	Top      int
}

// ScanResult is the usage report of one scan.
type ScanResult struct {
	RunID        string           `json:"run_id,omitempty"`
	Files        int              `json:"files"`
	Elements     int              `json:"elements"`
	Attributes   int              `json:"attributes"`
	Recognized   int              `json:"recognized"`
	Top          []scan.KindCount `json:"top"`
	Unrecognized []scan.NameCount `json:"unrecognized"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Report attribute usage in SVG documents",
		Long: `Scan SVG documents and classify every attribute name.

Prints the most used recognized attributes and every unrecognized spelling.
With --db the merged report is stored as a census run.

Examples:
  svgattr scan icons/*.svg
  svgattr scan --db census.db --workers 8 icons/*.svg`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent documents (default from config)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "census database to store the run in (default from config)")
	cmd.Flags().IntVar(&opts.Top, "top", 10, "recognized attributes to list, 0 for all")

	return cmd
}

func runScan(opts *ScanOptions, paths []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, nil)
	}
	workers, db := cfg.Scan.Workers, cfg.Census.DB
	if cmd.Flags().Changed("workers") {
		workers = opts.Workers
	}
	if cmd.Flags().Changed("db") {
		db = opts.Database
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("scanning documents", "files", len(paths), "workers", workers)
	files, err := scan.Files(ctx, paths, workers)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeScan, err.Error(), nil, nil)
	}

	reports := make([]*scan.Report, len(files))
	for i, fr := range files {
		reports[i] = fr.Report
	}
	merged := scan.Merge(reports...)

	result := ScanResult{
		Files:        len(files),
		Elements:     merged.Elements,
		Attributes:   merged.Attributes,
		Recognized:   merged.Recognized(),
		Top:          merged.Counts(),
		Unrecognized: merged.UnknownCounts(),
	}
	if opts.Top > 0 && len(result.Top) > opts.Top {
		result.Top = result.Top[:opts.Top]
	}
	if result.Top == nil {
		result.Top = []scan.KindCount{}
	}

	if db != "" {
		runID, err := storeRun(ctx, db, strings.Join(paths, ","), len(files), merged)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeCensus, err.Error(), nil, nil)
		}
		result.RunID = runID
		slog.Info("stored census run", "run", runID, "db", db)
	}

	return f.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "Scanned %d file(s): %d elements, %d attributes, %d recognized\n",
			result.Files, result.Elements, result.Attributes, result.Recognized)
		if len(result.Top) > 0 {
			fmt.Fprintln(w, "\nTop attributes:")
			for _, c := range result.Top {
				fmt.Fprintf(w, "  %-24s %d\n", c.Name, c.Count)
			}
		}
		if len(result.Unrecognized) > 0 {
			fmt.Fprintln(w, "\nUnrecognized:")
			for _, c := range result.Unrecognized {
				fmt.Fprintf(w, "  %-24q %d\n", c.Name, c.Count)
			}
		}
		if result.RunID != "" {
			fmt.Fprintf(w, "\nStored run %s in %s\n", result.RunID, db)
		}
	})
}

func storeRun(ctx context.Context, path, source string, files int, report *scan.Report) (string, error) {
	st, err := census.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runID, err := census.NewRunID()
	if err != nil {
		return "", err
	}
	if err := st.WriteRun(ctx, runID, source, files, report); err != nil {
		return "", err
	}
	return runID, nil
}
