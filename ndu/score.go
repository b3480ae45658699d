package ndu

import (
	"fmt"

	"bitbucket.org/nrtlab/ndu/bio"
)

// NDU is the normalized distribution uniformity of the matrix: the sum
// of squared deviations of every cell from the uniform expectation
// n/(4p), divided by n. Higher values mean a more skewed base
// distribution across the residue classes, i.e. a stronger periodic
// signal.
func (cm *CongruenceMatrix) NDU() float64 {
	n := float64(cm.n)
	avg := n / float64(bio.NBases*cm.p)
	du := 0.0
	for _, c := range cm.counts {
		diff := float64(c) - avg
		du += diff * diff
	}
	return du / n
}

// NDUClosedForm computes the same quantity as NDU via the closed form
// (sum of squared counts - n^2/(4p)) / n. Kept as a cross-check of the
// deviation sum.
func (cm *CongruenceMatrix) NDUClosedForm() float64 {
	n := float64(cm.n)
	sum := 0.0
	for _, c := range cm.counts {
		sum += float64(c) * float64(c)
	}
	du := sum - n*n/float64(bio.NBases*cm.p)
	return du / n
}

// PerfectLevel is the sum of per-class maximum counts divided by n,
// the fraction of positions matching the majority symbol of their
// residue class. It is 1 exactly when every residue class is
// monochromatic, i.e. the periodicity produces an exact repeat.
func (cm *CongruenceMatrix) PerfectLevel() float64 {
	sum := 0
	for m := 0; m < cm.p; m++ {
		sum += cm.ColMax(m)
	}
	return float64(sum) / float64(cm.n)
}

// checkPeriod validates a candidate repeat length against a sequence.
func checkPeriod(seq string, p int) error {
	if len(seq) < 1 {
		return ErrEmptySequence
	}
	if p < 1 || p > len(seq) {
		return fmt.Errorf("%w: %d (sequence length %d)", ErrInvalidPeriod, p, len(seq))
	}
	return nil
}

// NDU returns the normalized distribution uniformity of periodicity p
// in a sequence (e.g. p=3 peaks in protein-coding regions).
func NDU(seq string, p int) (float64, error) {
	if err := checkPeriod(seq, p); err != nil {
		return 0, err
	}
	cm, err := NewCongruenceMatrix(seq, p)
	if err != nil {
		return 0, err
	}
	return cm.NDU(), nil
}

// PerfectLevel returns the perfect level of repeats of periodicity p
// in a sequence.
func PerfectLevel(seq string, p int) (float64, error) {
	if err := checkPeriod(seq, p); err != nil {
		return 0, err
	}
	cm, err := NewCongruenceMatrix(seq, p)
	if err != nil {
		return 0, err
	}
	return cm.PerfectLevel(), nil
}
