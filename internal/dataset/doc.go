// Package dataset discovers and parses the per-school input files that
// feed the dashboard.
//
// Environmental sensor logs arrive as one CSV per school, loosely named
// but always containing the school name somewhere in the file name. The
// growth measurements arrive as a single multi-sheet spreadsheet with one
// sheet per school. Discovery classifies files by normalized substring
// matching against the fixed school table and returns immutable in-memory
// collections; everything downstream is pure computation over a Snapshot.
package dataset
