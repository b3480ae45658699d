package main

// ScanSummary stores the analysis results of a single sequence.
type ScanSummary struct {
	// Name is the sequence name from the FASTA input.
	Name string `json:"name"`
	// Length is the sequence length.
	Length int `json:"length"`
	// Composition is the number of G, C, A and other symbols.
	Composition map[string]int `json:"composition"`
	// Period is the periodicity with the maximum NDU.
	Period int `json:"period"`
	// NDU is the maximum NDU value.
	NDU float64 `json:"ndu"`
	// PerfectLevel is the perfect level at Period.
	PerfectLevel float64 `json:"perfectLevel"`
	// Consensus is the consensus repeat pattern at Period.
	Consensus string `json:"consensus"`
	// TopPeriods holds the top periodicities in ascending score order
	// (only with -top).
	TopPeriods []int `json:"topPeriods,omitempty"`
	// Spectrum is the whole-sequence NDU spectrum (only with -spectrum).
	Spectrum []float64 `json:"spectrum,omitempty"`
	// Walk is the prefix or sliding-window walk (only with -walk).
	Walk []float64 `json:"walk,omitempty"`
	// WalkMode is the walk flavor used for Walk.
	WalkMode string `json:"walkMode,omitempty"`
	// Grid is the periodicity x window-position NDU grid (only with -grid).
	Grid [][]float64 `json:"grid,omitempty"`
	// Stored is true if the scan was loaded from the database.
	Stored bool `json:"stored,omitempty"`
	// Time is the computation time in seconds.
	Time float64 `json:"time"`
}

// RunSummary stores the results for a whole run.
type RunSummary struct {
	// Version stores nduscan version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Sequences holds one summary per input sequence.
	Sequences []*ScanSummary `json:"sequences"`
	// TotalTime is the total computation time in seconds.
	TotalTime float64 `json:"totalTime"`
}
