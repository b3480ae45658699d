/*
Nduscan locates approximate repeats and latent periodicities in DNA
sequences using the normalized distribution uniformity (NDU) of the
congruence matrix.

The basic usage looks like this:

	nduscan sequences.fst

, this scans every sequence for the strongest periodicity up to half
the sequence length (capped at 100) and reports its NDU, perfect level
and consensus repeat pattern.

Spectra along the sequence are available too:

	nduscan -period 3 -walk window sequences.fst

To see all the options run:

	nduscan -h
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/nrtlab/ndu/bio"
	"bitbucket.org/nrtlab/ndu/ndu"
	"bitbucket.org/nrtlab/ndu/scandb"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("nduscan")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("nduscan", "DNA repeat and periodicity scanner").Version(version)

	// input
	fastaFileName = app.Arg("sequences", "FASTA file with nucleotide sequences").Required().ExistingFile()

	// scan parameters
	maxPeriod = app.Flag("maxperiod", "periodicity scan limit (default: half the sequence length, at most 100)").Default("0").Int()
	p1        = app.Flag("p1", "lower periodicity for -top (defaults to 2)").Default("2").Int()
	p2        = app.Flag("p2", "upper periodicity for -top (defaults to the scan limit)").Default("0").Int()
	top       = app.Flag("top", "report the N strongest periodicities in [p1, p2]").Default("0").Int()
	topMetric = app.Flag("metric", "score used for -top (ndu or perfect)").Default("ndu").Enum("ndu", "perfect")

	// walk parameters
	period   = app.Flag("period", "periodicity for walks (defaults to the strongest one)").Default("0").Int()
	walkMode = app.Flag("walk", "spectrum walk along the sequence "+
		"(prefix: growing prefixes, "+
		"window: sliding window, "+
		"none: no walk"+
		")").Default("none").Enum("none", "prefix", "window")
	window   = app.Flag("window", "sliding window size (default: 5 times the periodicity)").Default("0").Int()
	grid     = app.Flag("grid", "compute the full periodicity x position window grid").Bool()
	spectrum = app.Flag("spectrum", "include the whole-sequence NDU spectrum in the output").Bool()

	// input/output
	dbFileName = app.Flag("db", "bolt database for storing and reusing scan results").String()
	outLogF    = app.Flag("log", "write log to a file").String()
	logLevel   = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

// scan analyzes a single sequence, reusing a stored result when the
// database holds one for the same scan limit.
func scan(seq bio.Sequence, db *bolt.DB) (summary *ScanSummary, err error) {
	startTime := time.Now()

	summary = &ScanSummary{
		Name:   seq.Name,
		Length: len(seq.Sequence),
	}
	composition := bio.Composition(seq.Sequence)
	summary.Composition = map[string]int{
		"G": composition[bio.G],
		"C": composition[bio.C],
		"A": composition[bio.A],
		"T": composition[bio.Other],
	}

	sio := scandb.NewScanIO(db, seq.Name)
	rec, err := sio.Load()
	if err != nil {
		log.Error("Error loading stored scan:", err)
	}

	if rec != nil && rec.Limit == *maxPeriod && rec.Length == len(seq.Sequence) {
		summary.Period = rec.Period
		summary.NDU = rec.NDU
		summary.PerfectLevel = rec.PerfectLevel
		summary.Consensus = rec.Consensus
		summary.Stored = true
		if *spectrum {
			summary.Spectrum = rec.Spectrum
		}
	} else {
		scores, err := ndu.AllNDU(seq.Sequence, *maxPeriod)
		if err != nil {
			return nil, err
		}
		best, score, err := ndu.MaxNDU(seq.Sequence, *maxPeriod)
		if err != nil {
			return nil, err
		}
		summary.Period = best
		summary.NDU = score
		summary.PerfectLevel, err = ndu.PerfectLevel(seq.Sequence, best)
		if err != nil {
			return nil, err
		}
		summary.Consensus, err = ndu.ConsensusRepeat(seq.Sequence, best)
		if err != nil {
			return nil, err
		}
		if *spectrum {
			summary.Spectrum = scores
		}

		err = sio.Save(&scandb.ScanRecord{
			Name:         seq.Name,
			Length:       len(seq.Sequence),
			Limit:        *maxPeriod,
			Period:       summary.Period,
			NDU:          summary.NDU,
			PerfectLevel: summary.PerfectLevel,
			Consensus:    summary.Consensus,
			Spectrum:     scores,
		})
		if err != nil {
			log.Error("Error storing scan:", err)
		}
	}
	log.Noticef("%s: period=%d, ndu=%g, perfect=%g, consensus=%s",
		seq.Name, summary.Period, summary.NDU, summary.PerfectLevel, summary.Consensus)

	if *top > 0 {
		upper := *p2
		if upper < 1 {
			upper = summary.Period
			if *p1 > upper {
				upper = *p1
			}
		}
		var periods []int
		switch *topMetric {
		case "ndu":
			periods, _, err = ndu.TopNDUPeriods(seq.Sequence, *p1, upper, *top)
		case "perfect":
			periods, _, err = ndu.TopPerfectPeriods(seq.Sequence, *p1, upper, *top)
		}
		if err != nil {
			return nil, err
		}
		summary.TopPeriods = periods
		log.Noticef("%s: top periodicities (ascending score): %v", seq.Name, periods)
	}

	walkPeriod := *period
	if walkPeriod < 1 {
		walkPeriod = summary.Period
	}

	switch *walkMode {
	case "prefix":
		summary.Walk, err = ndu.PrefixWalk(seq.Sequence, walkPeriod)
		if err != nil {
			return nil, err
		}
		summary.WalkMode = "prefix"
	case "window":
		summary.Walk, err = ndu.WindowWalk(seq.Sequence, walkPeriod, *window)
		if err != nil {
			return nil, err
		}
		summary.WalkMode = "window"
	}

	if *grid {
		w := *window
		if w < 1 {
			w = 5 * walkPeriod
		}
		g, err := ndu.WindowGrid(seq.Sequence, w, *maxPeriod)
		if err != nil {
			return nil, err
		}
		rows, cols := g.Dims()
		summary.Grid = make([][]float64, rows)
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			copy(row, g.RawRowView(i))
			summary.Grid[i] = row
		}
	}

	endTime := time.Now()
	summary.Time = endTime.Sub(startTime).Seconds()
	return summary, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "nduscan")
	logging.SetLevel(level, "ndu")
	logging.SetLevel(level, "scandb")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	startTime := time.Now()

	fastaFile, err := os.Open(*fastaFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer fastaFile.Close()

	seqs, err := bio.ParseFasta(fastaFile)
	if err != nil {
		log.Fatal(err)
	}
	if len(seqs) == 0 {
		log.Fatal("No sequences found in the input")
	}
	log.Infof("Read %d sequences", len(seqs))

	var db *bolt.DB
	if *dbFileName != "" {
		db, err = bolt.Open(*dbFileName, 0666, nil)
		if err != nil {
			log.Fatal("Error opening database:", err)
		}
		defer db.Close()
	}

	runSummary := RunSummary{
		Version:     version,
		CommandLine: os.Args,
	}

	for _, seq := range seqs {
		summary, err := scan(seq, db)
		if err != nil {
			log.Fatalf("Error scanning %s: %v", seq.Name, err)
		}
		runSummary.Sequences = append(runSummary.Sequences, summary)
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	runSummary.TotalTime = deltaT.Seconds()

	if *jsonF != "" {
		j, err := json.Marshal(runSummary)
		if err != nil {
			log.Error("Error marshaling json output:", err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
