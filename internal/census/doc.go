// Package census stores attribute usage reports in SQLite.
//
// Each scan becomes a run keyed by a UUIDv7. A run row carries the totals and
// one counts row per spelling, recognized or not. Runs are ordered by seq, a
// logical clock assigned on insert.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//   - one open connection
package census
