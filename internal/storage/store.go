package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orrery/internal/orbit"
)

// Store persists headless recording sessions under a base directory,
// one subdirectory per session holding metadata.json and track.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	TimeScale float64   `json:"time_scale"`
	Frames    int       `json:"frames"`
	Bodies    []string  `json:"bodies"`
}

// Track is a recorded session: one row per frame, with x, z and spin
// columns for each body in catalog order.
type Track struct {
	Bodies []string
	Frames []uint64
	Rows   [][]float64
}

const columnsPerBody = 3

func NewTrack(bodies []string) *Track {
	return &Track{Bodies: bodies}
}

// Append records one frame of render states. States must be in the
// same body order the track was created with.
func (t *Track) Append(frame uint64, states []orbit.RenderState) {
	row := make([]float64, 0, len(states)*columnsPerBody)
	for _, st := range states {
		row = append(row, st.Position.X, st.Position.Z, st.SpinDegrees)
	}
	t.Frames = append(t.Frames, frame)
	t.Rows = append(t.Rows, row)
}

func (s *Store) Save(timeScale float64, track *Track) (string, error) {
	sessionID := fmt.Sprintf("session_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, sessionID)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:        sessionID,
		Timestamp: time.Now(),
		TimeScale: timeScale,
		Frames:    len(track.Frames),
		Bodies:    track.Bodies,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "track.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"frame"}
	for _, name := range track.Bodies {
		header = append(header, name+"_x", name+"_z", name+"_spin")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range track.Rows {
		rec := []string{strconv.FormatUint(track.Frames[i], 10)}
		for _, val := range row {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return sessionID, nil
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(sessionID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrack reads a recorded session back. Body names are recovered
// from the CSV header.
func (s *Store) LoadTrack(sessionID string) (*Track, error) {
	file, err := os.Open(filepath.Join(s.baseDir, sessionID, "track.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Track{}, nil
	}

	header := records[0]
	track := &Track{}
	for i := 1; i < len(header); i += columnsPerBody {
		name := header[i]
		track.Bodies = append(track.Bodies, name[:len(name)-len("_x")])
	}

	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		frame, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		track.Frames = append(track.Frames, frame)
		track.Rows = append(track.Rows, row)
	}

	return track, nil
}

// Column extracts one body coordinate across all frames: component 0
// is x, 1 is z, 2 is spin. Used by the plot command.
func (t *Track) Column(bodyIndex, component int) []float64 {
	col := bodyIndex*columnsPerBody + component
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out
}
