// Package dataset accumulates kinematic feature rows into tables and turns
// table columns into normalized histograms.
//
// A Table is a column-ordered, in-memory frame: each appended kinrow.Row
// becomes one row, and labels the table has not seen before become new
// columns back-filled with NaN for the rows already present. Events with
// different particle content therefore coexist in one table, with NaN marking
// the features an event does not have.
//
// What this package offers:
//
//   - Table / Append / Column / Concat — row accumulation and column access.
//   - MakeHistograms — one normalized histogram per column, binned by a
//     pattern table (DefaultBins) or by the Sturges rule.
//   - Accumulate — parallel row production over a worker pool, preserving
//     input order in the merged table.
//
// The package holds everything in memory; serializing tables or histograms to
// disk is out of scope.
package dataset
