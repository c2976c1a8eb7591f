// Package comercial provides the types and pure computations behind a small
// commercial-operations tracker: sales records and price quotes entered by a
// sales team, summarized into dashboard figures and reconciled through bulk
// CSV import/export.
//
// The core functionalities include:
//   - Book Management: recording sales and quotes in a chronological,
//     in-memory book, persisted as a human-readable JSONL file.
//   - Record Filtering: seller scope, free-text search, and year/date-range
//     constraints over a record snapshot.
//   - Dashboard Metrics: sales totals, amounts received and pending,
//     proposal outcomes, conversion rate, and per-business-day throughput.
//   - Receivables Aging: bucketing of outstanding balances by age in days.
//   - Follow-up Scheduling: partitioning pending quote follow-ups into
//     overdue, due-today, and upcoming groups.
//   - Delimited Codec: the semicolon-delimited CSV format used to exchange
//     sales data with spreadsheets, with row-level import validation.
//
// Every report is a plain value recomputed from a snapshot of the book; the
// package holds no state between calls and performs no I/O outside the
// explicit encode/decode functions. This package serves as the foundational
// logic for the `vendas` command-line tool.
package comercial
