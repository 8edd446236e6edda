// Package application provides application initialization and dependency
// wiring. It assembles the configuration store, scorer, validator capability,
// and rate limiters behind one App value, keeping the main package focused on
// CLI parsing and orchestration.
package application
