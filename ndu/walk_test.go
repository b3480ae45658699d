package ndu

import (
	"math"
	"testing"
)

func TestPrefixWalkLength(tst *testing.T) {
	seq := randSeq(10, 9)
	walk, err := PrefixWalk(seq, 3)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(walk) != 9 {
		tst.Error("Expected 9 prefix scores, got", len(walk))
	}
}

func TestPrefixWalkScores(tst *testing.T) {
	seq := randSeq(50, 10)
	walk, err := PrefixWalk(seq, 4)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	for i, s := range walk {
		cm, err := NewCongruenceMatrix(seq[:i+1], 4)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		if math.Abs(s-cm.NDU()) > smallDiff {
			tst.Errorf("Prefix score %d != from-scratch NDU", i)
		}
	}
}

func TestWindowWalkLength(tst *testing.T) {
	seq := randSeq(40, 11)
	walk, err := WindowWalk(seq, 5, 20)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(walk) != 21 {
		tst.Error("Expected 40-20+1=21 window scores, got", len(walk))
	}
}

func TestWindowWalkDefaultWindow(tst *testing.T) {
	// default window is five periods: 25 here, so 40-25+1=16 scores
	seq := randSeq(40, 12)
	walk, err := WindowWalk(seq, 5, 0)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(walk) != 16 {
		tst.Error("Expected 16 window scores, got", len(walk))
	}
}

func TestWindowWalkLocalizes(tst *testing.T) {
	// a perfect repeat island should score higher than random flanks
	seq := randSeq(30, 13) + "ATCATCATCATCATCATCATCATCATCATC" + randSeq(30, 14)
	walk, err := WindowWalk(seq, 3, 30)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	// n=30, p=3, monochromatic classes of 10: (3*100 - 900/12)/30 = 7.5
	if math.Abs(walk[30]-7.5) > smallDiff {
		tst.Error("Expected NDU 7.5 over the repeat island, got", walk[30])
	}
	for i, s := range walk {
		if s > walk[30] {
			tst.Error("Offset", i, "scores above the repeat island")
		}
	}
}

func TestWindowGrid(tst *testing.T) {
	seq := randSeq(60, 15)
	grid, err := WindowGrid(seq, 20, 10)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	rows, cols := grid.Dims()
	if rows != 10 || cols != 41 {
		tst.Errorf("Expected a 10x41 grid, got %dx%d", rows, cols)
	}
	for j := 0; j < cols; j++ {
		if grid.At(0, j) != 0 {
			tst.Fatal("Expected a zero row 0")
		}
	}
	for p := 1; p < rows; p++ {
		walk, err := WindowWalk(seq, p, 20)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		for j, s := range walk {
			if math.Abs(grid.At(p, j)-s) > smallDiff {
				tst.Fatalf("Grid row %d differs from the window walk", p)
			}
		}
	}
}

func TestWalkErrors(tst *testing.T) {
	if _, err := PrefixWalk("", 3); err == nil {
		tst.Error("Expected error for empty sequence")
	}
	if _, err := PrefixWalk("ACGT", 0); err == nil {
		tst.Error("Expected error for periodicity 0")
	}
	if _, err := WindowWalk("ACGTACGT", 2, 20); err == nil {
		tst.Error("Expected error for window longer than sequence")
	}
	if _, err := WindowGrid("ACGTACGT", 0, 4); err == nil {
		tst.Error("Expected error for zero window")
	}
}
