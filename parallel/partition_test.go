package parallel_test

import (
	stderrors "errors"
	"testing"

	"github.com/rainkit/iterpar/errors"
	"github.com/rainkit/iterpar/parallel"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		n       int
		lengths []int
	}{
		{"uneven", 4, 7, []int{2, 2, 2, 1}},
		{"even", 3, 9, []int{3, 3, 3}},
		{"more threads than elements", 5, 2, []int{1, 1}},
		{"single thread", 1, 5, []int{5}},
		{"remainder goes first", 3, 8, []int{3, 3, 2}},
		{"empty", 3, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges, err := parallel.Partition(tt.threads, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if len(ranges) != len(tt.lengths) {
				t.Fatalf("got %d ranges %v, want %d", len(ranges), ranges, len(tt.lengths))
			}
			for i, r := range ranges {
				if r.Index != i {
					t.Errorf("range %d has index %d", i, r.Index)
				}
				if r.Len() != tt.lengths[i] {
					t.Errorf("range %v has length %d, want %d", r, r.Len(), tt.lengths[i])
				}
			}
		})
	}
}

func TestPartitionRejectsInvalidArguments(t *testing.T) {
	for _, args := range [][2]int{{0, 5}, {-3, 5}, {2, -1}} {
		_, err := parallel.Partition(args[0], args[1])
		if !stderrors.Is(err, errors.ErrInvalidArgument) {
			t.Errorf("Partition(%d, %d): expected INVALID_ARGUMENT, got %v", args[0], args[1], err)
		}
	}
}

func TestPartitionInvariants(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for threads := 1; threads <= 12; threads++ {
			ranges, err := parallel.Partition(threads, n)
			if err != nil {
				t.Fatal(err)
			}
			if n == 0 {
				if len(ranges) != 0 {
					t.Fatalf("Partition(%d, 0) = %v, want no ranges", threads, ranges)
				}
				continue
			}
			count := min(threads, n)
			if len(ranges) != count {
				t.Fatalf("Partition(%d, %d) returned %d ranges, want %d", threads, n, len(ranges), count)
			}
			if ranges[0].Low != 0 || ranges[count-1].High != n {
				t.Fatalf("Partition(%d, %d) = %v does not cover [0, %d)", threads, n, ranges, n)
			}
			for i, r := range ranges {
				if i > 0 && ranges[i-1].High != r.Low {
					t.Fatalf("Partition(%d, %d) = %v is not contiguous", threads, n, ranges)
				}
				want := n / count
				if i < n%count {
					want++
				}
				if r.Len() != want {
					t.Fatalf("Partition(%d, %d): range %v has length %d, want %d", threads, n, r, r.Len(), want)
				}
			}
		}
	}
}
