package census

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/svgattr/internal/scan"
)

// Run is one stored scan.
type Run struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Source     string `json:"source"`
	Files      int    `json:"files"`
	Elements   int    `json:"elements"`
	Attributes int    `json:"attributes"`
}

// Count is the stored tally for one attribute spelling.
type Count struct {
	Name  string `json:"name"`
	Known bool   `json:"known"`
	Count int    `json:"count"`
}

// WriteRun stores report under id in one transaction. Seq is assigned by the
// store. Writing an id that already exists is a no-op.
func (s *Store) WriteRun(ctx context.Context, id, source string, files int, report *scan.Report) (err error) {
	if id == "" {
		return errors.New("write run: empty id")
	}
	if report == nil {
		return errors.New("write run: nil report")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, source, files, elements, attributes)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM runs), ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, source, files, report.Elements, report.Attributes)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if n == 0 {
		// Already stored.
		return tx.Commit()
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO counts (run_id, name, known, count)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run counts: %w", err)
	}
	defer stmt.Close()

	for _, kc := range report.Counts() {
		if _, err = stmt.ExecContext(ctx, id, kc.Name, 1, kc.Count); err != nil {
			return fmt.Errorf("write run count %q: %w", kc.Name, err)
		}
	}
	for _, nc := range report.UnknownCounts() {
		if _, err = stmt.ExecContext(ctx, id, nc.Name, 0, nc.Count); err != nil {
			return fmt.Errorf("write run count %q: %w", nc.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}
