package ndu

// ConsensusRepeat returns the consensus repeat pattern of periodicity
// p in a sequence: for every residue class the majority base, priority
// G > C > A > T on ties. The result has length p.
func ConsensusRepeat(seq string, p int) (string, error) {
	if err := checkPeriod(seq, p); err != nil {
		return "", err
	}
	cm, err := NewCongruenceMatrix(seq, p)
	if err != nil {
		return "", err
	}
	pattern := make([]byte, p)
	for m := 0; m < p; m++ {
		pattern[m] = cm.ColArgMax(m).Byte()
	}
	return string(pattern), nil
}
