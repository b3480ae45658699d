// Package ndu detects approximate repeats and latent periodicities in
// nucleotide sequences using distribution uniformity of the congruence
// matrix.
package ndu

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/op/go-logging"

	"bitbucket.org/nrtlab/ndu/bio"
)

// log is a global logging variable.
var log = logging.MustGetLogger("ndu")

var (
	// ErrEmptySequence is returned for zero-length input.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrInvalidPeriod is returned when a periodicity is out of range.
	ErrInvalidPeriod = errors.New("invalid periodicity")
)

// CongruenceMatrix counts base occurrences per residue class of a
// sequence for a fixed periodicity p. Cell (b, m) is the number of
// positions i with i%p == m holding a symbol of class b. The matrix is
// immutable once built.
type CongruenceMatrix struct {
	p      int
	n      int
	counts []int
}

// NewCongruenceMatrix builds the congruence matrix of a sequence for
// periodicity p. The sequence must be non-empty, p must be positive;
// p larger than the sequence length is allowed and leaves the trailing
// residue classes empty (this happens for short walk prefixes).
func NewCongruenceMatrix(seq string, p int) (*CongruenceMatrix, error) {
	if len(seq) < 1 {
		return nil, ErrEmptySequence
	}
	if p < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, p)
	}
	cm := &CongruenceMatrix{
		p:      p,
		n:      len(seq),
		counts: make([]int, bio.NBases*p),
	}
	for i := 0; i < len(seq); i++ {
		b := bio.BaseFromByte(seq[i])
		cm.counts[int(b)*p+i%p]++
	}
	return cm, nil
}

// Period returns the periodicity the matrix was built for.
func (cm *CongruenceMatrix) Period() int {
	return cm.p
}

// Len returns the length of the source sequence.
func (cm *CongruenceMatrix) Len() int {
	return cm.n
}

// Count returns the number of class-m positions holding base b.
func (cm *CongruenceMatrix) Count(b bio.Base, m int) int {
	return cm.counts[int(b)*cm.p+m]
}

// Sum returns the total of all cells, which equals the sequence length.
func (cm *CongruenceMatrix) Sum() (s int) {
	for _, c := range cm.counts {
		s += c
	}
	return
}

// ColMax returns the largest count in residue class m.
func (cm *CongruenceMatrix) ColMax(m int) int {
	max := 0
	for b := 0; b < bio.NBases; b++ {
		if c := cm.counts[b*cm.p+m]; c > max {
			max = c
		}
	}
	return max
}

// ColArgMax returns the base with the largest count in residue class
// m. Ties resolve to the first row, i.e. priority G > C > A > Other.
func (cm *CongruenceMatrix) ColArgMax(m int) bio.Base {
	best := bio.G
	max := cm.counts[m]
	for b := 1; b < bio.NBases; b++ {
		if c := cm.counts[b*cm.p+m]; c > max {
			max = c
			best = bio.Base(b)
		}
	}
	return best
}

// String renders the matrix, at most ten columns.
func (cm *CongruenceMatrix) String() string {
	var buffer bytes.Buffer
	buffer.WriteString("<CongruenceMatrix p=" + strconv.Itoa(cm.p) + "\n")
	for b := 0; b < bio.NBases; b++ {
		buffer.WriteString("  " + string(bio.Base(b).Byte()) + ":")
		for m := 0; m < cm.p; m++ {
			if m == 10 {
				buffer.WriteString(" ...")
				break
			}
			buffer.WriteByte(' ')
			buffer.WriteString(strconv.Itoa(cm.counts[b*cm.p+m]))
		}
		buffer.WriteByte('\n')
	}
	buffer.WriteByte('>')
	return buffer.String()
}
