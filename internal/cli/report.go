package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/svgattr/internal/census"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
	RunID    string
	Limit    int
	List     bool
}

// ReportResult is one stored run with its top counts.
type ReportResult struct {
	Run    census.Run     `json:"run"`
	Counts []census.Count `json:"counts"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a stored census run",
		Long: `Show the most used attribute spellings of a stored census run.

Without --run the latest run is shown. --list prints every run instead.

Examples:
  svgattr report --db census.db
  svgattr report --db census.db --run 0190c1a2-... --limit 50
  svgattr report --db census.db --list`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "census database (default from config)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run id (default latest)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "spellings to list, 0 for all")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list stored runs")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, err.Error(), nil, nil)
	}
	db := cfg.Census.DB
	if cmd.Flags().Changed("db") {
		db = opts.Database
	}
	if db == "" {
		return f.Fail(ExitCommandError, ErrCodeCensus, "no census database: pass --db or set census.db", nil, nil)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := census.Open(db)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCensus, err.Error(), nil, nil)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if opts.List {
		return listRuns(ctx, f, st)
	}

	var run census.Run
	if opts.RunID != "" {
		run, err = st.GetRun(ctx, opts.RunID)
	} else {
		run, err = st.Latest(ctx)
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCensus, err.Error(), nil, nil)
	}

	counts, err := st.Top(ctx, run.ID, opts.Limit)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCensus, err.Error(), nil, nil)
	}

	result := ReportResult{Run: run, Counts: counts}
	return f.Emit(result, func(w io.Writer) {
		fmt.Fprintf(w, "Run %s (#%d) %s\n", run.ID, run.Seq, run.Source)
		fmt.Fprintf(w, "%d file(s), %d elements, %d attributes\n\n", run.Files, run.Elements, run.Attributes)
		for _, c := range counts {
			mark := " "
			if !c.Known {
				mark = "?"
			}
			fmt.Fprintf(w, "%s %-24s %d\n", mark, c.Name, c.Count)
		}
	})
}

func listRuns(ctx context.Context, f *OutputFormatter, st *census.Store) error {
	runs, err := st.Runs(ctx)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeCensus, err.Error(), nil, nil)
	}
	return f.Emit(runs, func(w io.Writer) {
		if len(runs) == 0 {
			fmt.Fprintln(w, "No runs stored.")
			return
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%4d  %s  %d file(s)  %d attributes  %s\n", r.Seq, r.ID, r.Files, r.Attributes, r.Source)
		}
	})
}
