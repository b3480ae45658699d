package ndu

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// PrefixWalk returns the NDU spectrum along the walk of a sequence:
// the NDU of periodicity p for every proper prefix, lengths 1 to n-1.
// Each prefix is scored from scratch; prefixes shorter than p simply
// leave trailing residue classes empty.
func PrefixWalk(seq string, p int) ([]float64, error) {
	if err := checkPeriod(seq, p); err != nil {
		return nil, err
	}
	walk := make([]float64, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		cm, err := NewCongruenceMatrix(seq[0:i], p)
		if err != nil {
			return nil, err
		}
		walk = append(walk, cm.NDU())
	}
	return walk, nil
}

// WindowWalk returns the NDU of periodicity p over a sliding window at
// every start offset, n-window+1 scores in total, localizing where
// along the sequence the periodic signal is strongest. A window < 1
// selects the default of five times the periodicity.
func WindowWalk(seq string, p, window int) ([]float64, error) {
	if err := checkPeriod(seq, p); err != nil {
		return nil, err
	}
	if window < 1 {
		window = 5 * p
	}
	if window > len(seq) {
		return nil, fmt.Errorf("window %d longer than sequence (%d)",
			window, len(seq))
	}
	walk := make([]float64, 0, len(seq)-window+1)
	for i := 0; i+window <= len(seq); i++ {
		cm, err := NewCongruenceMatrix(seq[i:i+window], p)
		if err != nil {
			return nil, err
		}
		walk = append(walk, cm.NDU())
	}
	return walk, nil
}

// WindowGrid returns the sliding-window NDU for every periodicity from
// 1 to limit-1 as a limit x (n-window+1) matrix; row p holds
// WindowWalk(seq, p, window) and row 0 stays zero. A limit < 1 selects
// the default as in AllNDU. This is the most expensive scan,
// O(limit * n * window).
func WindowGrid(seq string, window, limit int) (*mat64.Dense, error) {
	if len(seq) < 1 {
		return nil, ErrEmptySequence
	}
	if limit < 1 {
		limit = periodLimit(len(seq))
		if limit < 1 {
			limit = 1
		}
	}
	if window < 1 || window > len(seq) {
		return nil, fmt.Errorf("invalid window %d (sequence length %d)",
			window, len(seq))
	}
	cols := len(seq) - window + 1
	grid := mat64.NewDense(limit, cols, nil)
	for p := 1; p < limit; p++ {
		row, err := WindowWalk(seq, p, window)
		if err != nil {
			return nil, err
		}
		grid.SetRow(p, row)
		log.Debugf("window grid: periodicity %d/%d done", p, limit-1)
	}
	return grid, nil
}
