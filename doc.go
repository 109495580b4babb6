// Package health records vital-sign readings per patient and derives views
// and exports from them. It is designed to be local-first: all the data lives
// in a folder of plain CSV files that any spreadsheet can open.
//
// The core functionalities include:
//   - Record Store: one append-only table per patient, created on the first
//     save and never rewritten (Store).
//   - Input Form: staging of a new reading with bounded values and defaults,
//     and patient selection (Form, SelectPatient).
//   - History: derived views over a table, the most recent rows and the
//     per-field time series used by charts (Tail, Series, Panels).
//   - Encoding: the CSV format shared by storage and export (EncodeReadings,
//     DecodeReadings).
//
// This package serves as the foundational logic for the `hlog` command-line
// tool. Chart rendering lives in package chart, the exported artifacts in
// package export.
package health
