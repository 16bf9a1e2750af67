package internal

import (
	"iter"
)

// SeqConcat yields the values of each seq in turn, until the consumer stops.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		more := true
		for _, seq := range seqs {
			seq(func(val T) bool {
				more = yield(val)
				return more
			})
			if !more {
				return
			}
		}
	}
}

// SeqFilter yields only the values of seq for which keep returns true.
func SeqFilter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			if !keep(val) {
				continue
			}
			if !yield(val) {
				return
			}
		}
	}
}
