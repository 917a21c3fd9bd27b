package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	TimeScale float64     `json:"time_scale"`
	Frames    []uint64    `json:"frames"`
	Bodies    []string    `json:"bodies"`
	Rows      [][]float64 `json:"rows"`
}

func ExportJSON(path string, timeScale float64, track *Track) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, timeScale, track)
}

func ExportJSONStdout(timeScale float64, track *Track) error {
	return exportJSON(os.Stdout, timeScale, track)
}

func exportJSON(w io.Writer, timeScale float64, track *Track) error {
	data := ExportData{
		TimeScale: timeScale,
		Frames:    track.Frames,
		Bodies:    track.Bodies,
		Rows:      track.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
