// Package model defines the core data structures used throughout fangscan.
//
// This package contains the following main types:
//   - FangPair: one factorization of a vampire number into two fangs
//   - Finding: the detection result for a single number
//   - ScanReport: the aggregated result of one range scan
//   - Summary: aggregate statistics over a report's findings
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (vampire, scan, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
