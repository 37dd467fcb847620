package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run        RunMetadata `json:"run"`
	Population []int       `json:"population"`
	Final      []string    `json:"final"`
}

// ExportJSON writes a run's metadata, population series and final grid rows.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	population, err := s.LoadPopulation(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Run:        *meta,
		Population: population,
		Final:      []string{},
	}
	if final, err := s.LoadFinal(runID); err == nil {
		width, height := final.Dimensions()
		for row := 0; row < height; row++ {
			line := make([]byte, width)
			for col := 0; col < width; col++ {
				line[col] = '0'
				if final.Cell(row, col) {
					line[col] = '1'
				}
			}
			data.Final = append(data.Final, string(line))
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
