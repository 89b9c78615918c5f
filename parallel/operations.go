package parallel

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	stdslices "slices"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq"

	"github.com/rainkit/iterpar/errors"
	"github.com/rainkit/iterpar/gsync"
)

// Reverse returns a comparator that orders elements opposite to cmp.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// Maximum returns the greatest element of values under cmp, which must be a
// total order returning a negative number, zero, or a positive number. Of
// several greatest elements, the one that occurs first in values is
// returned.
//
// Maximum returns an error with code INVALID_ARGUMENT if values is empty or
// threads < 1.
func Maximum[T any](ctx context.Context, threads int, values []T, cmp func(a, b T) int, opts ...Option) (T, error) {
	return maximum(ctx, newOptions(opts), "maximum", threads, values, cmp)
}

// Minimum returns the least element of values under cmp. Of several least
// elements, the one that occurs first in values is returned.
//
// Minimum returns an error with code INVALID_ARGUMENT if values is empty or
// threads < 1.
func Minimum[T any](ctx context.Context, threads int, values []T, cmp func(a, b T) int, opts ...Option) (T, error) {
	return maximum(ctx, newOptions(opts), "minimum", threads, values, Reverse(cmp))
}

func maximum[T any](ctx context.Context, o *options, operation string, threads int, values []T, cmp func(a, b T) int) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, errors.InvalidArgument("values", fmt.Sprintf("%s of an empty slice", operation))
	}
	best := func(s iter.Seq[T]) (m T) {
		first := true
		for v := range s {
			// A later element replaces the current one only if strictly
			// greater, so ties go to the first occurrence.
			if first || cmp(v, m) > 0 {
				m, first = v, false
			}
		}
		return m
	}
	return evaluate(ctx, o, operation, threads, values,
		func(part iter.Seq[T]) (T, error) { return best(part), nil },
		best,
	)
}

// All reports whether every element of values satisfies pred. It returns
// true for an empty slice.
func All[T any](ctx context.Context, threads int, values []T, pred func(T) bool, opts ...Option) (bool, error) {
	return all(ctx, newOptions(opts), "all", threads, values, pred)
}

// Any reports whether some element of values satisfies pred. It is computed
// as the negation of All over the negated predicate, and returns false for
// an empty slice.
func Any[T any](ctx context.Context, threads int, values []T, pred func(T) bool, opts ...Option) (bool, error) {
	ok, err := all(ctx, newOptions(opts), "any", threads, values, func(v T) bool { return !pred(v) })
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func all[T any](ctx context.Context, o *options, operation string, threads int, values []T, pred func(T) bool) (bool, error) {
	return evaluate(ctx, o, operation, threads, values,
		func(part iter.Seq[T]) (bool, error) {
			return seq.Every(part, pred), nil
		},
		func(results iter.Seq[bool]) bool {
			return seq.Every(results, func(ok bool) bool { return ok })
		},
	)
}

var joinBuffers = gsync.Pool[bytes.Buffer]{
	New:   func() *bytes.Buffer { return new(bytes.Buffer) },
	Reset: (*bytes.Buffer).Reset,
}

// Join concatenates the default string forms (as produced by fmt.Sprint) of
// the elements of values, in order, without separators. It returns "" for an
// empty slice.
func Join[T any](ctx context.Context, threads int, values []T, opts ...Option) (string, error) {
	return evaluate(ctx, newOptions(opts), "join", threads, values,
		func(part iter.Seq[T]) (string, error) {
			buf := joinBuffers.Get()
			defer joinBuffers.Put(buf)
			for v := range part {
				fmt.Fprint(buf, v)
			}
			return buf.String(), nil
		},
		func(results iter.Seq[string]) string {
			var b strings.Builder
			for s := range results {
				b.WriteString(s)
			}
			return b.String()
		},
	)
}

// Filter returns the elements of values that satisfy pred, in their original
// order.
func Filter[T any](ctx context.Context, threads int, values []T, pred func(T) bool, opts ...Option) ([]T, error) {
	return evaluate(ctx, newOptions(opts), "filter", threads, values,
		func(part iter.Seq[T]) ([]T, error) {
			var kept []T
			for v := range part {
				if pred(v) {
					kept = append(kept, v)
				}
			}
			return kept, nil
		},
		concat[T],
	)
}

// Map returns the results of applying f to each element of values, in the
// order of values.
func Map[T, U any](ctx context.Context, threads int, values []T, f func(T) U, opts ...Option) ([]U, error) {
	return evaluate(ctx, newOptions(opts), "map", threads, values,
		func(part iter.Seq[T]) ([]U, error) {
			return stdslices.Collect(seq.Map(part, f)), nil
		},
		concat[U],
	)
}

// concat joins per-partition slices in partition order.
func concat[T any](results iter.Seq[[]T]) []T {
	return stdslices.AppendSeq([]T{}, seq.FlattenSlices(results))
}
