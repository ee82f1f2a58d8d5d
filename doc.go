// Package tv renders tabular data as a human-legible, fixed-width terminal
// table in the style of tidyverse tibble printing.
//
// The central entry point is [Render], which takes raw string cells, a
// header, and a [Config], and returns a [RenderedTable]. The pipeline is a
// pure, deterministic transform with five sequential stages per render call:
//
//   - NA normalization: the recognized missing-value spellings ("", NA,
//     N/A, null, NaN, None, missing, ".") collapses to the canonical
//     two-character "NA" marker. See [NormalizeNA].
//   - Type inference: each column is classified as a whole into one of
//     [Integer], [Double], [Logical], or [Character]. A single
//     non-conforming cell degrades the entire column to Character. See
//     [InferType].
//   - Significant-figure formatting: numeric columns are reformatted to the
//     configured sigfig budget (default 3), with automatic switching to
//     scientific notation for extreme magnitudes. See [FormatNumber].
//   - Width measuring: column widths derive from content and header,
//     clamped to [Config.LowerWidth, Config.UpperWidth], with
//     grapheme-cluster-safe ellipsis truncation and decimal-point alignment
//     inside numeric columns.
//   - Layout: columns accumulate left to right against the terminal width
//     budget; columns that do not fit are dropped whole and summarized in a
//     trailing meta line, never wrapped.
//
// # Inputs and Outputs
//
// The package never reads files or terminals. Upstream collaborators (CSV
// readers, CLI flag parsing, terminal size detection) supply a materialized
// row set and a width budget; see cmd/tv for a complete host.
//
// [RenderedTable.Lines] holds the assembled plain-text output. The
// structured fields (Header, Cells, Classes, Columns, Gutters, Meta) expose
// the same content piece by piece so an external colorizer can style cells
// by semantic class without re-deriving types or re-measuring widths.
//
// # Graceful Degradation
//
// Per-cell problems are never errors: unparseable numbers and non-finite
// values render as NA, and unrecognized strings degrade their column to
// Character. Only structural problems fail a render, as one of the sentinel
// errors:
//
//   - [ErrEmptyTable] — zero columns
//   - [ErrHeaderMismatch] — a ragged row while [Config.AllowRagged] is off
//   - [ErrInvalidConfig] — sigfig outside [1,7], widths below the NA
//     marker, or an inverted width range
//
// # Concurrency
//
// A render call is synchronous and single-threaded. Config is treated as
// immutable for the duration of a call, and calls share no state, so the
// package is safe to use from any number of goroutines on distinct tables.
package tv
