package census

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/svgattr/attribute"
	"github.com/roach88/svgattr/internal/scan"
)

// Runs returns every stored run, oldest first.
//
// Returns an empty slice (not nil) when the store has no runs.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, source, files, elements, attributes
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seq, &r.Source, &r.Files, &r.Elements, &r.Attributes); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns the run with the given id, or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, files, elements, attributes
		FROM runs
		WHERE id = ?
	`, id)
	return scanRun(row, id)
}

// Latest returns the run with the highest seq, or ErrRunNotFound when the
// store is empty.
func (s *Store) Latest(ctx context.Context) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, files, elements, attributes
		FROM runs
		ORDER BY seq DESC
		LIMIT 1
	`)
	return scanRun(row, "latest")
}

func scanRun(row *sql.Row, id string) (Run, error) {
	var r Run
	err := row.Scan(&r.ID, &r.Seq, &r.Source, &r.Files, &r.Elements, &r.Attributes)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("query run %s: %w", id, err)
	}
	return r, nil
}

// Top returns up to limit counts of a run, most frequent first, ties by name.
// A limit of zero or less returns all counts.
func (s *Store) Top(ctx context.Context, runID string, limit int) ([]Count, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, known, count
		FROM counts
		WHERE run_id = ?
		ORDER BY count DESC, name COLLATE BINARY ASC
		LIMIT ?
	`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := []Count{}
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Name, &c.Known, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// Report rebuilds the scan report stored for runID. Spellings stored as
// recognized are classified again, so a report written by an older attribute
// list keeps names that are no longer known as unrecognized.
func (s *Store) Report(ctx context.Context, runID string) (*scan.Report, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	counts, err := s.Top(ctx, runID, 0)
	if err != nil {
		return nil, err
	}

	report := scan.NewReport()
	report.Elements = run.Elements
	report.Attributes = run.Attributes
	for _, c := range counts {
		if a, ok := attribute.Lookup(c.Name); ok && c.Known {
			report.Known[a] += c.Count
			continue
		}
		report.Unknown[c.Name] += c.Count
	}
	return report, nil
}
