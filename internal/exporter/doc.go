// Package exporter renders the loaded dataset into downloadable files.
//
// This package contains three main components:
//
// Environment CSV export: the combined sensor log of all schools with a
// UTF-8 BOM prefix so Excel recognizes the Korean column values.
//
// Growth XLSX export: all schools' growth measurements concatenated into
// a single sheet, tagged with the school column.
//
// Summary CSV export: per-school growth means and the best-performing
// target EC concentration, used by the report command line tool.
//
// Example usage:
//
//	// Stream the combined environment CSV to an HTTP response
//	err := exporter.WriteEnvironmentCSV(w, snapshot.EnvironmentAll())
//
//	// Render the combined growth workbook
//	err = exporter.WriteGrowthXLSX(w, snapshot.Growth)
package exporter
