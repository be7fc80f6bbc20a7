package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store records headless runs under a base directory, one subdirectory per
// run holding metadata.json and samples.csv. It records diagnostics over
// time for listing and plotting; it does not snapshot body state, so a run
// cannot be resumed from disk.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	TimeScale float64            `json:"time_scale"`
	G         float64            `json:"g"`
	Softening float64            `json:"softening"`
	Substeps  int                `json:"substeps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Sample is one per-frame diagnostics row.
type Sample struct {
	Time            float64
	Bodies          int
	Energy          float64
	Px, Py          float64
	AngularMomentum float64
}

var csvHeader = []string{"time", "bodies", "energy", "px", "py", "angular_momentum"}

// Save writes one run to disk and returns its generated ID.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, sm := range samples {
		row := []string{
			strconv.FormatFloat(sm.Time, 'f', 6, 64),
			strconv.Itoa(sm.Bodies),
			strconv.FormatFloat(sm.Energy, 'f', 6, 64),
			strconv.FormatFloat(sm.Px, 'f', 6, 64),
			strconv.FormatFloat(sm.Py, 'f', 6, 64),
			strconv.FormatFloat(sm.AngularMomentum, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every readable run, skipping damaged entries.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads back the per-frame diagnostics of a run.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(csvHeader) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		bodies, _ := strconv.Atoi(record[1])
		energy, _ := strconv.ParseFloat(record[2], 64)
		px, _ := strconv.ParseFloat(record[3], 64)
		py, _ := strconv.ParseFloat(record[4], 64)
		l, _ := strconv.ParseFloat(record[5], 64)
		samples = append(samples, Sample{
			Time: t, Bodies: bodies, Energy: energy,
			Px: px, Py: py, AngularMomentum: l,
		})
	}
	return samples, nil
}
