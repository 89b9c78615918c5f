package parallel

import (
	"fmt"

	"github.com/rainkit/iterpar/errors"
)

// Range is the half-open index range [Low, High) assigned to the worker with
// the given Index.
type Range struct {
	Index     int
	Low, High int
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.High - r.Low }

func (r Range) String() string {
	return fmt.Sprintf("#%d[%d:%d)", r.Index, r.Low, r.High)
}

// Partition divides [0, n) into min(threads, n) contiguous ranges whose
// lengths differ by at most one. The first n mod min(threads, n) ranges are
// the longer ones.
//
// Partition returns an error if threads < 1 or n < 0, and no ranges if n == 0.
func Partition(threads, n int) ([]Range, error) {
	if threads < 1 {
		return nil, errors.InvalidArgument("threads", fmt.Sprintf("must be positive (got %d)", threads))
	}
	if n < 0 {
		return nil, errors.InvalidArgument("length", fmt.Sprintf("must not be negative (got %d)", n))
	}
	if n == 0 {
		return nil, nil
	}
	count := min(threads, n)
	blockSize, rest := n/count, n%count
	ranges := make([]Range, count)
	low := 0
	for i := range ranges {
		high := low + blockSize
		if i < rest {
			high++
		}
		ranges[i] = Range{Index: i, Low: low, High: high}
		low = high
	}
	return ranges, nil
}

// workerRanges is Partition with empty input mapped to a single empty range,
// so that every evaluation runs at least one worker.
func workerRanges(threads, n int) ([]Range, error) {
	ranges, err := Partition(threads, n)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		ranges = []Range{{}}
	}
	return ranges, nil
}
