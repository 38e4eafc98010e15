// Package position computes ordering values for items moved within or across containers.
//
// Two schemes are used. Options and columns carry a dense integer order (0..n-1, ascending).
// Tasks carry a floating-point status position and are listed in descending position order,
// so a new task is appended to the bottom of its column by going below the current minimum.
package position

import (
	"errors"
	"fmt"
	"math"
)

// Baseline is the position of the first task in an empty column
const Baseline = 0.0

// MinGap is the smallest distance tolerated between two neighbouring positions
// before the column should be renormalized.
const MinGap = 1e-6

// ErrIndexOutOfRange is returned when a move refers to a slot outside the container
var ErrIndexOutOfRange = errors.New("index out of range")

// OrderFunc reads the order value of an item
type OrderFunc[T any] func(T) int

// SetOrderFunc returns a copy of an item carrying the given order value
type SetOrderFunc[T any] func(T, int) T

// ComputeReorder removes the item at from and re-inserts it at to, then reassigns orders as the
// dense sequence 0..n-1 of the new arrangement. The input slice is never modified.
//
// A move to the same index, or within a single-item container, returns a copy with the original
// order values and moved=false so the caller can skip the write.
func ComputeReorder[T any](items []T, from, to int, setOrder SetOrderFunc[T]) (result []T, moved bool, err error) {
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, false, fmt.Errorf("move %d -> %d in %d items: %w", from, to, n, ErrIndexOutOfRange)
	}

	result = make([]T, n)
	copy(result, items)
	if from == to || n == 1 {
		return result, false, nil
	}

	item := result[from]
	if from < to {
		copy(result[from:to], result[from+1:to+1])
	} else {
		copy(result[to+1:from+1], result[to:from])
	}
	result[to] = item

	for i := range result {
		result[i] = setOrder(result[i], i)
	}
	return result, true, nil
}

// ChangedOrders returns the indices in after whose order differs from the item with the same key
// in before. Only those rows need to be written.
func ChangedOrders[T any, K comparable](before, after []T, key func(T) K, order OrderFunc[T]) []int {
	previous := make(map[K]int, len(before))
	for _, item := range before {
		previous[key(item)] = order(item)
	}

	changed := make([]int, 0, len(after))
	for i, item := range after {
		if old, ok := previous[key(item)]; !ok || old != order(item) {
			changed = append(changed, i)
		}
	}
	return changed
}

// GetLowestPosition returns a position that sorts after every existing one in a
// descending column: min(positions)-1, or Baseline for an empty column.
func GetLowestPosition(positions []float64) float64 {
	if len(positions) == 0 {
		return Baseline
	}
	lowest := positions[0]
	for _, p := range positions[1:] {
		if p < lowest {
			lowest = p
		}
	}
	return lowest - 1
}

// GetHighestPosition returns max(positions)+1, or Baseline for an empty column.
func GetHighestPosition(positions []float64) float64 {
	if len(positions) == 0 {
		return Baseline
	}
	highest := positions[0]
	for _, p := range positions[1:] {
		if p > highest {
			highest = p
		}
	}
	return highest + 1
}

// PositionForIndex returns the position that places an item at index of a column whose
// positions are given in display (descending) order. Indices past the end append to the bottom.
func PositionForIndex(sorted []float64, index int) float64 {
	switch {
	case len(sorted) == 0:
		return Baseline
	case index <= 0:
		return GetHighestPosition(sorted)
	case index >= len(sorted):
		return GetLowestPosition(sorted)
	default:
		return (sorted[index-1] + sorted[index]) / 2
	}
}

// NeedsRenormalize reports whether adjacent positions (in display order) have collapsed
// to within MinGap of each other or are no longer finite.
func NeedsRenormalize(sorted []float64) bool {
	for i, p := range sorted {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return true
		}
		if i > 0 && math.Abs(sorted[i-1]-p) < MinGap {
			return true
		}
	}
	return false
}

// Renormalize returns dense integer positions n-1..0 for a column of n tasks in display order.
func Renormalize(n int) []float64 {
	positions := make([]float64, n)
	for i := range positions {
		positions[i] = float64(n - 1 - i)
	}
	return positions
}
