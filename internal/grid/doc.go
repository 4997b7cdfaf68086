// Package grid expands a sweep model into its job table: it derives the
// merged lambda axis, enumerates the Cartesian product of the axes in the
// contractual nesting order, and computes the per-job derived fields.
package grid
