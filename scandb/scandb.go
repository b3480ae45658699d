// Package scandb stores finished periodicity scan results in a bolt
// database so repeated runs over the same sequences can reuse them.
package scandb

import (
	"encoding/json"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("scandb")

// SCANS is the bucket name for all scan records.
var SCANS = []byte("scans")

// ScanRecord stores the result of one whole-sequence scan.
type ScanRecord struct {
	// Name is the sequence name from the FASTA input.
	Name string `json:"name"`
	// Length is the sequence length.
	Length int `json:"length"`
	// Limit is the periodicity scan limit the record was computed with.
	Limit int `json:"limit"`
	// Period is the periodicity with the strongest signal.
	Period int `json:"period"`
	// NDU is the score at Period.
	NDU float64 `json:"ndu"`
	// PerfectLevel is the perfect level at Period.
	PerfectLevel float64 `json:"perfectLevel"`
	// Consensus is the consensus repeat pattern at Period.
	Consensus string `json:"consensus"`
	// Spectrum is the NDU per periodicity, element k for periodicity k+1.
	Spectrum []float64 `json:"spectrum,omitempty"`
}

// ScanIO provides scan record storage for a single sequence.
type ScanIO struct {
	db  *bolt.DB
	key []byte
}

// NewScanIO creates a new ScanIO keyed by sequence name.
func NewScanIO(db *bolt.DB, name string) *ScanIO {
	return &ScanIO{
		db:  db,
		key: []byte(name),
	}
}

// Save stores a scan record in the database.
func (s *ScanIO) Save(rec *ScanRecord) error {
	recB, err := json.Marshal(rec)
	if err != nil {
		log.Error("Error serializing scan record", err)
		return err
	}
	err = SaveData(s.db, s.key, recB)
	if err != nil {
		log.Error("Error saving scan record", err)
	}
	return err
}

// Load returns the stored scan record, or nil if there is none.
func (s *ScanIO) Load() (*ScanRecord, error) {
	b, err := LoadData(s.db, s.key)
	if err != nil || b == nil {
		return nil, err
	}

	var rec *ScanRecord
	err = json.Unmarshal(b, &rec)
	if err != nil {
		return nil, err
	}

	if rec != nil {
		log.Noticef("Found stored scan for %s (period=%v, ndu=%v)",
			rec.Name, rec.Period, rec.NDU)
	}
	return rec, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(SCANS)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(SCANS)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
