// Package bio provides the nucleotide alphabet and sequence input.
package bio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Base is a nucleotide class. The alphabet is closed: G, C and A are
// matched exactly, everything else (including T, ambiguity codes and
// invalid characters) falls into the Other bucket.
type Base byte

const (
	G Base = iota
	C
	A
	Other

	// NBases is the number of base classes.
	NBases = 4
)

// alphabet maps a Base back to its canonical symbol. The Other bucket
// renders as 'T'.
var alphabet = [NBases]byte{'G', 'C', 'A', 'T'}

// BaseFromByte classifies a sequence symbol into one of the four base
// classes. Unrecognized symbols are not an error, they are Other.
func BaseFromByte(c byte) Base {
	switch c {
	case 'G':
		return G
	case 'C':
		return C
	case 'A':
		return A
	}
	return Other
}

// Byte returns the canonical symbol for a base class.
func (b Base) Byte() byte {
	return alphabet[b]
}

// Composition returns per-class symbol counts for a sequence.
func Composition(seq string) (counts [NBases]int) {
	for i := 0; i < len(seq); i++ {
		counts[BaseFromByte(seq[i])]++
	}
	return
}

// Sequence is a type which is intended for storing a nucleotide
// sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader. Sequence lines are
// uppercased and stripped of spaces.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return s[:len(s)-1]
}
