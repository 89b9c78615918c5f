// Package student answers projection, filtering, sorting and grouping
// queries over in-memory Student records.
//
// All functions are pure: they never modify their input and return freshly
// allocated results. Students are ordered naturally by ID, or by name, which
// compares last name, then first name, then ID.
package student
