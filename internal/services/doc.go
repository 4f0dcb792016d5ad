// Package services implements the business logic layer of the GrowDash
// application. It provides a clean separation between HTTP handlers and
// the dataset store, ensuring that view assembly rules are centralized
// and testable.
//
// # Architecture
//
// Services follow these architectural principles:
//
//	1. Interface-driven design for testability
//	2. Context propagation for cancellation and tracing
//	3. Dependency injection for loose coupling
//	4. Domain-focused methods that encapsulate view assembly rules
//
// # Available Services
//
// The package provides these core services:
//
//	- DashboardService: Assembles the overview, environment, and growth views
//	- ExportService: Streams the combined CSV/XLSX downloads
//	- HealthService: Provides system health checks
//
// # Error Handling
//
// Services return dataset sentinel errors and API errors that handlers
// transform into RFC 7807 problem documents:
//
//	- dataset.ErrMissingDirectory / ErrMissingSpreadsheet / ErrEmptyDataset
//	  for load-time failures (user-visible hard stops)
//	- Validation errors for invalid input
//	- Internal errors for unexpected failures
//
// An empty environment mapping or an empty growth collection is a hard
// stop for every view; within a loaded dataset, a school with no rows
// degrades to empty results rather than an error.
package services
