package ndu

import (
	"fmt"
	"sort"
)

// maxScanPeriod caps the default periodicity scan limit.
const maxScanPeriod = 100

// periodLimit returns the default periodicity limit for a sequence of
// length n: half the length, capped at maxScanPeriod.
func periodLimit(n int) int {
	mp := n / 2
	if mp > maxScanPeriod {
		mp = maxScanPeriod
	}
	return mp
}

// checkRange validates a periodicity range against a sequence.
func checkRange(seq string, p1, p2 int) error {
	if len(seq) < 1 {
		return ErrEmptySequence
	}
	if p1 < 1 || p1 > p2 || p2 > len(seq) {
		return fmt.Errorf("%w: range [%d, %d] (sequence length %d)",
			ErrInvalidPeriod, p1, p2, len(seq))
	}
	return nil
}

// NDURange returns the NDU for every periodicity in [p1, p2],
// inclusive on both ends.
func NDURange(seq string, p1, p2 int) ([]float64, error) {
	if err := checkRange(seq, p1, p2); err != nil {
		return nil, err
	}
	scores := make([]float64, 0, p2-p1+1)
	for p := p1; p <= p2; p++ {
		cm, err := NewCongruenceMatrix(seq, p)
		if err != nil {
			return nil, err
		}
		scores = append(scores, cm.NDU())
	}
	return scores, nil
}

// PerfectRange returns the perfect level for every periodicity in
// [p1, p2], inclusive on both ends.
func PerfectRange(seq string, p1, p2 int) ([]float64, error) {
	if err := checkRange(seq, p1, p2); err != nil {
		return nil, err
	}
	scores := make([]float64, 0, p2-p1+1)
	for p := p1; p <= p2; p++ {
		cm, err := NewCongruenceMatrix(seq, p)
		if err != nil {
			return nil, err
		}
		scores = append(scores, cm.PerfectLevel())
	}
	return scores, nil
}

// AllNDU returns the NDU spectrum of a whole sequence for
// periodicities 2 to limit-1. Element 0 is fixed to zero so that
// element k holds the score of periodicity k+1 (periodicity 1 carries
// no meaningful signal). A limit < 1 selects the default, half the
// sequence length capped at 100.
func AllNDU(seq string, limit int) ([]float64, error) {
	if len(seq) < 1 {
		return nil, ErrEmptySequence
	}
	if limit < 1 {
		limit = periodLimit(len(seq))
	} else if limit-1 > len(seq) {
		return nil, fmt.Errorf("%w: limit %d (sequence length %d)",
			ErrInvalidPeriod, limit, len(seq))
	}
	scores := make([]float64, 1, limit)
	for p := 2; p < limit; p++ {
		cm, err := NewCongruenceMatrix(seq, p)
		if err != nil {
			return nil, err
		}
		scores = append(scores, cm.NDU())
	}
	return scores, nil
}

// MaxNDU returns the periodicity with the strongest NDU signal in a
// whole sequence, together with its score. Ties resolve to the lowest
// periodicity. A limit < 1 selects the default as in AllNDU.
func MaxNDU(seq string, limit int) (period int, score float64, err error) {
	scores, err := AllNDU(seq, limit)
	if err != nil {
		return 0, 0, err
	}
	idx := argMax(scores)
	return idx + 1, scores[idx], nil
}

// MaxPerfect returns the periodicity in [p1, p2] with the highest
// perfect level, together with that level. Ties resolve to the lowest
// periodicity.
func MaxPerfect(seq string, p1, p2 int) (period int, score float64, err error) {
	scores, err := PerfectRange(seq, p1, p2)
	if err != nil {
		return 0, 0, err
	}
	idx := argMax(scores)
	return idx + p1, scores[idx], nil
}

// TopNDUPeriods returns the n periodicities in [p1, p2] with the
// largest NDU, in ascending score order, so the last element is the
// strongest periodicity (also returned as best).
//
// Known limitation: each of the n largest score values is mapped back
// to the first periodicity holding it, so tied scores can resolve to
// the same periodicity more than once. The result is not guaranteed to
// be a distinct set.
func TopNDUPeriods(seq string, p1, p2, n int) (periods []int, best int, err error) {
	scores, err := NDURange(seq, p1, p2)
	if err != nil {
		return nil, 0, err
	}
	return topPeriods(scores, p1, n)
}

// TopPerfectPeriods is TopNDUPeriods for the perfect level, with the
// same tie behavior.
func TopPerfectPeriods(seq string, p1, p2, n int) (periods []int, best int, err error) {
	scores, err := PerfectRange(seq, p1, p2)
	if err != nil {
		return nil, 0, err
	}
	return topPeriods(scores, p1, n)
}

// topPeriods maps the n largest scores back to periodicities (offset
// p1 for index 0).
func topPeriods(scores []float64, p1, n int) (periods []int, best int, err error) {
	if n < 1 || n > len(scores) {
		return nil, 0, fmt.Errorf("top count %d out of range (have %d scores)",
			n, len(scores))
	}
	_, idx := largests(scores, n)
	periods = make([]int, n)
	for i, j := range idx {
		periods[i] = j + p1
	}
	return periods, periods[n-1], nil
}

// largests returns the n largest values of scores in ascending order
// together with, for each value, its first index in scores.
func largests(scores []float64, n int) (vals []float64, idx []int) {
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	vals = sorted[len(sorted)-n:]
	idx = make([]int, n)
	for i, v := range vals {
		for j, s := range scores {
			if s == v {
				idx[i] = j
				break
			}
		}
	}
	return
}

// argMax returns the index of the first maximal score.
func argMax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
