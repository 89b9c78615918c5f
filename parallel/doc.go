// Package parallel evaluates whole-slice reductions, filters and maps by
// splitting the input into contiguous partitions and running one goroutine
// per partition.
//
// Evaluate is the general form: a task reduces each partition to a partial
// result, and a combiner folds the partial results in partition order. The
// operations Maximum, Minimum, All, Any, Join, Filter and Map are fixed
// (task, combiner) pairs over Evaluate.
//
// For a given input the result never depends on the worker count: partial
// results are combined in the order of their partitions, which is the order
// of the input, so combiners that are associative but not commutative (string
// concatenation, slice concatenation) agree with a sequential loop.
//
// A goroutine is started for every partition of every call; nothing is pooled
// or reused between calls. Cancellation of the context passed to an operation
// is observed only while the caller waits for its workers, and the call
// returns only once every worker has finished.
package parallel
