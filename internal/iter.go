package internal

import (
	"iter"
)

// IterSeq2Map converts each pair of an iterator sequence.
func IterSeq2Map[K1, V1, K2, V2 any](seq iter.Seq2[K1, V1], conv func(K1, V1) (K2, V2)) iter.Seq2[K2, V2] {
	return func(yield func(K2, V2) bool) {
		for key, val := range seq {
			if !yield(conv(key, val)) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
