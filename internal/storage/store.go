package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lifegif/internal/experiment"
	"github.com/san-kum/lifegif/internal/life"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	finalFile      = "final.txt"
	recordingFile  = "recording.gif"
)

var ErrNoRecording = errors.New("storage: run has no recording")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunParams describes how a run was set up.
type RunParams struct {
	Pattern      string
	Width        int
	Height       int
	Generations  int
	Seed         int64
	Density      float64
	Workers      int
	FrameDelayMs int
	Theme        string
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Pattern      string             `json:"pattern"`
	Timestamp    time.Time          `json:"timestamp"`
	Width        int                `json:"width"`
	Height       int                `json:"height"`
	Generations  int                `json:"generations"`
	Steps        int                `json:"steps"`
	Seed         int64              `json:"seed"`
	Density      float64            `json:"density,omitempty"`
	Workers      int                `json:"workers"`
	FinalLive    int                `json:"final_live"`
	Recorded     bool               `json:"recorded"`
	FrameDelayMs int                `json:"frame_delay_ms,omitempty"`
	Theme        string             `json:"theme,omitempty"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes the run under a new directory and returns its ID.
func (s *Store) Save(params RunParams, result *experiment.Result) (string, error) {
	now := time.Now()
	runID, runDir, err := s.newRunDir(params.Pattern, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Pattern:      params.Pattern,
		Timestamp:    now,
		Width:        params.Width,
		Height:       params.Height,
		Generations:  params.Generations,
		Steps:        result.Steps,
		Seed:         params.Seed,
		Density:      params.Density,
		Workers:      params.Workers,
		Recorded:     len(result.GIF) > 0,
		FrameDelayMs: params.FrameDelayMs,
		Theme:        params.Theme,
		Metrics:      result.Metrics,
	}
	if result.Final != nil {
		meta.FinalLive = result.Final.LiveCount()
		meta.Width, meta.Height = result.Final.Dimensions()
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePopulation(filepath.Join(runDir, populationFile), result.Population); err != nil {
		return "", err
	}
	if result.Final != nil {
		if err := os.WriteFile(filepath.Join(runDir, finalFile), []byte(life.FormatText(result.Final)), 0644); err != nil {
			return "", err
		}
	}
	if len(result.GIF) > 0 {
		if err := os.WriteFile(filepath.Join(runDir, recordingFile), result.GIF, 0644); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) newRunDir(pattern string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", pattern, now.Unix())
	runID := base
	for i := 1; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePopulation(path string, population []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"generation", "live"}); err != nil {
		return err
	}
	for gen, live := range population {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(live)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPopulation returns the live count per generation.
func (s *Store) LoadPopulation(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []int{}, nil
	}

	population := make([]int, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 2 {
			return nil, fmt.Errorf("storage: %s line %d: expected 2 fields", populationFile, i+2)
		}
		live, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", populationFile, i+2, err)
		}
		population = append(population, live)
	}
	return population, nil
}

func (s *Store) LoadFinal(runID string) (*life.Grid, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, finalFile))
	if err != nil {
		return nil, err
	}
	return life.ParseText(string(data))
}

// RecordingPath returns the GIF path of a recorded run.
func (s *Store) RecordingPath(runID string) (string, error) {
	path := filepath.Join(s.baseDir, runID, recordingFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoRecording, runID)
		}
		return "", err
	}
	return path, nil
}
