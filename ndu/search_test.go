package ndu

import (
	"math"
	"strings"
	"testing"
)

func TestMaxNDUExactRepeat(tst *testing.T) {
	seq := strings.Repeat("ATCG", 20)
	period, score, err := MaxNDU(seq, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if period != 4 {
		tst.Error("Expected periodicity 4, got", period)
	}
	// n=80, p=4: (4*400 - 6400/16)/80 = 15
	refNDU := 15.0
	tst.Log("NDU=", score, ", Ref=", refNDU)
	if math.Abs(score-refNDU) > smallDiff {
		tst.Error("Expected ", refNDU, ", got", score)
	}
}

func TestMaxNDUWithinSpectrum(tst *testing.T) {
	seq := randSeq(500, 6)
	scores, err := AllNDU(seq, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	period, score, err := MaxNDU(seq, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	max := scores[0]
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if score != max {
		tst.Error("MaxNDU score", score, "!= spectrum maximum", max)
	}
	if score != scores[period-1] {
		tst.Error("Spectrum index does not match periodicity", period)
	}
}

func TestAllNDUAlignment(tst *testing.T) {
	seq := randSeq(60, 7)
	// default limit is n/2 = 30, scanned periodicities 2..29
	scores, err := AllNDU(seq, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(scores) != 29 {
		tst.Error("Expected 29 spectrum values, got", len(scores))
	}
	if scores[0] != 0 {
		tst.Error("Expected zero placeholder for periodicity 1, got", scores[0])
	}
	for k := 1; k < len(scores); k++ {
		ref, err := NDU(seq, k+1)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		if math.Abs(scores[k]-ref) > smallDiff {
			tst.Errorf("Spectrum element %d != NDU of periodicity %d", k, k+1)
		}
	}
}

func TestNDURangeInclusive(tst *testing.T) {
	seq := randSeq(100, 8)
	scores, err := NDURange(seq, 3, 12)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(scores) != 10 {
		tst.Error("Expected 10 scores in [3, 12], got", len(scores))
	}
	first, err := NDU(seq, 3)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	last, err := NDU(seq, 12)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if scores[0] != first || scores[9] != last {
		tst.Error("Range endpoints do not match direct scores")
	}
}

func TestMaxPerfect(tst *testing.T) {
	seq := strings.Repeat("ATCG", 20)
	period, pr, err := MaxPerfect(seq, 2, 10)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if period < 2 || period > 10 {
		tst.Error("Periodicity", period, "outside the scanned range")
	}
	// periodicities 4 and 8 are both exact; the lower one wins
	if period != 4 || pr != 1.0 {
		tst.Errorf("Expected periodicity 4 with perfect level 1, got %d/%v", period, pr)
	}
	scores, err := PerfectRange(seq, 2, 10)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	for _, s := range scores {
		if s > pr {
			tst.Error("MaxPerfect missed a larger score", s)
		}
	}
}

func TestTopNDUPeriods(tst *testing.T) {
	seq := strings.Repeat("ATCG", 20)
	periods, best, err := TopNDUPeriods(seq, 2, 10, 3)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(periods) != 3 {
		tst.Error("Expected 3 periodicities, got", len(periods))
	}
	if best != 4 || periods[2] != 4 {
		tst.Error("Expected periodicity 4 last (strongest), got", periods)
	}
	for _, p := range periods {
		if p < 2 || p > 10 {
			tst.Error("Periodicity", p, "outside the scanned range")
		}
	}
}

func TestLargests(tst *testing.T) {
	vals, idx := largests([]float64{0, 2, 12, 3, 14, 5, 9, 2, 13, 4}, 3)
	want := []float64{12, 13, 14}
	wantIdx := []int{2, 8, 4}
	for i := range want {
		if vals[i] != want[i] || idx[i] != wantIdx[i] {
			tst.Error("Expected", want, wantIdx, ", got", vals, idx)
		}
	}
}

func TestLargestsTies(tst *testing.T) {
	// tied values all resolve to the first matching index; this is the
	// documented limitation of the top-n selection
	_, idx := largests([]float64{5, 5, 1}, 2)
	if idx[0] != 0 || idx[1] != 0 {
		tst.Error("Expected duplicate first index on a tie, got", idx)
	}
}

func TestSearchErrors(tst *testing.T) {
	if _, err := NDURange("ACGTACGT", 3, 2); err == nil {
		tst.Error("Expected error for inverted range")
	}
	if _, err := NDURange("ACGTACGT", 0, 2); err == nil {
		tst.Error("Expected error for zero lower bound")
	}
	if _, err := PerfectRange("ACGT", 2, 5); err == nil {
		tst.Error("Expected error for range beyond sequence length")
	}
	if _, err := AllNDU("", 0); err == nil {
		tst.Error("Expected error for empty sequence")
	}
	if _, _, err := TopNDUPeriods("ACGTACGT", 2, 4, 5); err == nil {
		tst.Error("Expected error when asking for more periodicities than scanned")
	}
}
