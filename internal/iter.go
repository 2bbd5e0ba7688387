package internal

import (
	"iter"
)

// Concat yields the values of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Enumerate pairs each value of a sequence with its position, from zero.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for val := range seq {
			if !yield(n, val) {
				return
			}
			n++
		}
	}
}

// Filter yields the values of a sequence accepted by keep.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			if keep(val) && !yield(val) {
				return
			}
		}
	}
}
