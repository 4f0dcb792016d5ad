// Package analytics computes the descriptive statistics and chart-ready
// projections the dashboard renders.
//
// Every function here is a pure transformation over loaded collections:
// no I/O, no shared state, and empty input degrades to an empty result so
// the presentation layer can show a "no data" state instead of failing.
package analytics
