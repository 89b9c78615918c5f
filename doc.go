// Package iterpar provides partitioned parallel evaluation of whole-slice
// reductions, filters and maps, together with a small student records query
// library.
//
// It provides the following subpackages:
//
// iterpar/parallel splits a slice into contiguous partitions, evaluates a task
// over each partition on its own goroutine, and combines the partial results
// in partition order. Maximum, Minimum, All, Any, Join, Filter and Map are
// built on top of it.
//
// iterpar/student answers projection, filtering, sorting and grouping queries
// over Student records.
//
// iterpar/errors provides coded errors with suppressed causes.
//
// iterpar/config loads settings from files, .env files and the environment.
//
// iterpar/logger provides structured logging.
//
// iterpar/gsync provides typed synchronization abstractions.
package iterpar
